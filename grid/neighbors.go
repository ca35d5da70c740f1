package grid

// stepOffsets lists the four orthogonal directions as (drow, dcol) in the
// fixed probe order down, up, left, right. The probe order only matters
// before shuffling.
var stepOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}

// ComputeStepNeighbors recomputes and caches c's traversable neighbors: each
// orthogonal cell one step away that is in bounds and not a Barrier. The
// result is shuffled once with the grid RNG.
//
// Must be called after any barrier change that touches c's surroundings;
// the cache is otherwise left as is.
// Complexity: O(1).
func (g *Grid) ComputeStepNeighbors(c *Cell) []*Cell {
	out := make([]*Cell, 0, len(stepOffsets))
	for _, d := range stepOffsets {
		n := g.Cell(c.row+d[0], c.col+d[1])
		if n == nil || n.state == Barrier {
			continue
		}
		out = append(out, n)
	}
	shuffleInPlace(out, g.rng)
	c.neighbors = out

	return out
}

// ComputeWallNeighbors recomputes and caches c's wall-jump neighbors: for
// each orthogonal direction, the cell two steps away (Target) when it is in
// bounds and not a Barrier, paired with the cell in between (Wall). The
// result is shuffled once with the grid RNG.
// Complexity: O(1).
func (g *Grid) ComputeWallNeighbors(c *Cell) []WallNeighbor {
	out := make([]WallNeighbor, 0, len(stepOffsets))
	for _, d := range stepOffsets {
		t := g.Cell(c.row+2*d[0], c.col+2*d[1])
		if t == nil || t.state == Barrier {
			continue
		}
		out = append(out, WallNeighbor{
			Wall:   g.cells[c.row+d[0]][c.col+d[1]],
			Target: t,
		})
	}
	shuffleInPlace(out, g.rng)
	c.walls = out

	return out
}

// RefreshNeighbors recomputes the step-neighbor cache of every cell.
// Call it once before each traversal.
// Complexity: O(N²).
func (g *Grid) RefreshNeighbors() {
	g.Each(func(c *Cell) {
		g.ComputeStepNeighbors(c)
	})
}
