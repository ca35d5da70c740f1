package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/maze"
	"github.com/katalvlaran/pathviz/observe"
)

func TestKruskal_Perfect(t *testing.T) {
	for _, n := range []int{2, 5, 8, 9, 21, 64} {
		for _, seed := range []int64{1, 2} {
			g := checkerboard(t, n, seed)
			rooms := g.Count(grid.Empty)

			res, err := maze.Kruskal(g)
			require.NoError(t, err)
			assert.Equal(t, rooms, res.Visited, "n=%d", n)
			assert.Equal(t, rooms-1, res.Carved, "n=%d", n)
			assert.True(t, maze.IsPerfect(g), "n=%d seed=%d\n%s", n, seed, g)
		}
	}
}

func TestKruskal_ExaminesEveryWall(t *testing.T) {
	g := checkerboard(t, 9, 5)
	var counter observe.Counter
	res, err := maze.Kruskal(g, maze.WithNotifier(&counter))
	require.NoError(t, err)
	// 4×4 rooms: 4 rows of 3 horizontal walls plus 4 columns of 3 vertical ones
	assert.Equal(t, 24, res.Steps)
	assert.Equal(t, 24, counter.N)
}

func TestKruskal_SeedDeterminism(t *testing.T) {
	a, b := checkerboard(t, 21, 9), checkerboard(t, 21, 9)
	_, err := maze.Kruskal(a)
	require.NoError(t, err)
	_, err = maze.Kruskal(b)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestKruskal_ErrorsAndCancel(t *testing.T) {
	_, err := maze.Kruskal(nil)
	assert.ErrorIs(t, err, maze.ErrNilGrid)

	g := checkerboard(t, 21, 1)
	res, err := maze.Kruskal(g, maze.WithCanceller(observe.AfterN(4)))
	assert.ErrorIs(t, err, observe.ErrCancelled)
	assert.Equal(t, 4, res.Steps)
	assert.LessOrEqual(t, res.Carved, 4)
	assert.False(t, maze.IsPerfect(g))
}
