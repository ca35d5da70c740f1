package grid

// ConnectedComponents finds all 4-connected regions of non-barrier cells.
// Connectivity is computed from the current states, not from the neighbor
// caches, so the result is always fresh.
//
// Components are listed in row-major order of their first cell; cells within
// a component appear in BFS discovery order.
//
// Time:   O(N²·4).
// Memory: O(N²) for seen flags and output.
func (g *Grid) ConnectedComponents() [][]*Cell {
	seen := make([]bool, g.size*g.size)
	var comps [][]*Cell

	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			c0 := g.cells[row][col]
			if c0.state == Barrier || seen[g.index(c0)] {
				continue
			}
			// BFS to collect component
			queue := []*Cell{c0}
			seen[g.index(c0)] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range stepOffsets {
					v := g.Cell(u.row+d[0], u.col+d[1])
					if v == nil || v.state == Barrier || seen[g.index(v)] {
						continue
					}
					seen[g.index(v)] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// OpenEdges counts unordered pairs of orthogonally adjacent non-barrier cells.
// Complexity: O(N²).
func (g *Grid) OpenEdges() int {
	edges := 0
	g.Each(func(c *Cell) {
		if c.state == Barrier {
			return
		}
		// count only down and right to visit each pair once
		if d := g.Cell(c.row+1, c.col); d != nil && d.state != Barrier {
			edges++
		}
		if r := g.Cell(c.row, c.col+1); r != nil && r.state != Barrier {
			edges++
		}
	})

	return edges
}

// index maps a cell to its row-major index: row*N + col.
// Complexity: O(1).
func (g *Grid) index(c *Cell) int {
	return c.row*g.size + c.col
}
