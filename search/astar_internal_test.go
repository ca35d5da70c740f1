package search

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathviz/grid"
)

// TestOpenPQ_TieBreak: equal f-scores pop in insertion order, lower f first.
func TestOpenPQ_TieBreak(t *testing.T) {
	g, _ := grid.NewGrid(3)
	var pq openPQ
	heap.Init(&pq)
	heap.Push(&pq, &openItem{f: 4, seq: 0, cell: g.Cell(0, 0)})
	heap.Push(&pq, &openItem{f: 4, seq: 1, cell: g.Cell(0, 1)})
	heap.Push(&pq, &openItem{f: 2, seq: 2, cell: g.Cell(0, 2)})
	heap.Push(&pq, &openItem{f: 4, seq: 3, cell: g.Cell(1, 0)})

	var got []string
	for pq.Len() > 0 {
		got = append(got, heap.Pop(&pq).(*openItem).cell.String())
	}
	assert.Equal(t, []string{"(0,2)", "(0,0)", "(0,1)", "(1,0)"}, got)
}

func TestScore_DefaultsToInfinity(t *testing.T) {
	g, _ := grid.NewGrid(1)
	m := map[*grid.Cell]float64{}
	assert.True(t, score(m, g.Cell(0, 0)) > 1e300)
	m[g.Cell(0, 0)] = 3
	assert.Equal(t, 3.0, score(m, g.Cell(0, 0)))
}
