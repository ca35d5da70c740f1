package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/observe"
	"github.com/katalvlaran/pathviz/search"
)

// TestReconstruct walks a hand-built chain (0,0)→(0,1)→(1,1)→(1,2).
func TestReconstruct(t *testing.T) {
	g, err := grid.NewGrid(3)
	require.NoError(t, err)
	start, a, b, goal := g.Cell(0, 0), g.Cell(0, 1), g.Cell(1, 1), g.Cell(1, 2)
	start.MarkStart()
	goal.MarkEnd()
	cameFrom := map[*grid.Cell]*grid.Cell{a: start, b: a, goal: b}

	var order []string
	n := observe.NotifyFunc(func() {
		// capture the most recently marked path cell
		for _, c := range []*grid.Cell{b, a} {
			if c.IsPath() && !contains(order, c.String()) {
				order = append(order, c.String())
			}
		}
	})
	walked := search.Reconstruct(cameFrom, goal, n)

	require.Len(t, walked, 4)
	assert.Same(t, goal, walked[0], "walk starts at goal")
	assert.Same(t, start, walked[3], "walk ends at start")
	assert.Equal(t, []string{"(1,1)", "(0,1)"}, order, "one redraw per path cell, goal → start")
	assert.True(t, start.IsStart(), "start is never re-marked")
	assert.True(t, goal.IsEnd(), "goal is not re-marked")
}

func TestReconstruct_Degenerate(t *testing.T) {
	assert.Nil(t, search.Reconstruct(nil, nil, nil))

	g, _ := grid.NewGrid(2)
	c := g.Cell(0, 0)
	walked := search.Reconstruct(map[*grid.Cell]*grid.Cell{}, c, nil)
	assert.Equal(t, []*grid.Cell{c}, walked)
}

// TestReconstruct_CycleTerminates guards against malformed maps.
func TestReconstruct_CycleTerminates(t *testing.T) {
	g, _ := grid.NewGrid(2)
	a, b := g.Cell(0, 0), g.Cell(0, 1)
	walked := search.Reconstruct(map[*grid.Cell]*grid.Cell{a: b, b: a}, a, nil)
	assert.LessOrEqual(t, len(walked), 4)
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
