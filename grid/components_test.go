package grid

import (
	"sort"
	"testing"
)

// TestConnectedComponents_Checkerboard: on a 5×5 checkerboard every open
// cell is isolated.
//
//	#####
//	#.#.#
//	#####
//	#.#.#
//	#####
func TestConnectedComponents_Checkerboard(t *testing.T) {
	g, _ := NewGrid(5)
	g.ApplyCheckerboard()
	comps := g.ConnectedComponents()
	if len(comps) != 4 {
		t.Fatalf("got %d components; want 4", len(comps))
	}
	for i, c := range comps {
		if len(c) != 1 {
			t.Errorf("component %d size = %d; want 1", i, len(c))
		}
	}
	if e := g.OpenEdges(); e != 0 {
		t.Errorf("OpenEdges = %d; want 0", e)
	}
}

// TestConnectedComponents_Split tests a 3×3 grid split by a barrier column.
//
//	.#.
//	.#.
//	.#.
//
// Expected: 2 components of size 3, 4 open edges.
func TestConnectedComponents_Split(t *testing.T) {
	g, _ := NewGrid(3)
	for row := 0; row < 3; row++ {
		g.Cell(row, 1).MarkBarrier()
	}
	comps := g.ConnectedComponents()
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	sort.Ints(sizes)
	if len(sizes) != 2 || sizes[0] != 3 || sizes[1] != 3 {
		t.Errorf("component sizes = %v; want [3 3]", sizes)
	}
	if e := g.OpenEdges(); e != 4 {
		t.Errorf("OpenEdges = %d; want 4", e)
	}
}

// TestConnectedComponents_AllBarrier: no open cells, no components.
func TestConnectedComponents_AllBarrier(t *testing.T) {
	g, _ := NewGrid(2)
	g.Each(func(c *Cell) { c.MarkBarrier() })
	if comps := g.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("got %d components; want 0", len(comps))
	}
}

// TestIndex checks the row-major mapping.
func TestIndex(t *testing.T) {
	g, _ := NewGrid(4)
	if i := g.index(g.Cell(2, 3)); i != 11 {
		t.Errorf("index(2,3) = %d; want 11", i)
	}
}
