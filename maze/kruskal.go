package maze

import (
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/observe"
)

// joint is a candidate wall: a barrier cell sitting between two open rooms
// on the same row or column.
type joint struct {
	wall *grid.Cell
	a, b *grid.Cell
}

// Kruskal carves a maze with randomized Kruskal: every wall between two
// rooms is a candidate edge, candidates are shuffled with the grid's RNG, and
// a wall is knocked down whenever its rooms are still in different sets.
// It uses a disjoint-set with path compression and union by rank.
//
// Unlike Generate it joins every room, not only those reachable from an
// origin, so WithOrigin is ignored. The Notifier is called once per
// candidate examined; Result.Steps counts candidates.
//
// Complexity: O(N² α(N²)) time, O(N²) memory.
func Kruskal(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Rooms become singleton sets.
	parent := make(map[*grid.Cell]*grid.Cell)
	rank := make(map[*grid.Cell]int)
	g.Each(func(c *grid.Cell) {
		if !c.IsBarrier() {
			parent[c] = c
		}
	})

	// find returns the representative of c's set, compressing the path.
	find := func(c *grid.Cell) *grid.Cell {
		for parent[c] != c {
			parent[c] = parent[parent[c]]
			c = parent[c]
		}
		return c
	}
	// union merges the sets of a and b; false if already joined.
	union := func(a, b *grid.Cell) bool {
		ra, rb := find(a), find(b)
		if ra == rb {
			return false
		}
		if rank[ra] < rank[rb] {
			ra, rb = rb, ra
		}
		parent[rb] = ra
		if rank[ra] == rank[rb] {
			rank[ra]++
		}
		return true
	}

	// 2) Collect and shuffle candidate walls.
	var joints []joint
	g.Each(func(c *grid.Cell) {
		if !c.IsBarrier() {
			return
		}
		r, col := c.Position()
		if a, b := g.Cell(r, col-1), g.Cell(r, col+1); isRoom(a) && isRoom(b) {
			joints = append(joints, joint{wall: c, a: a, b: b})
		}
		if a, b := g.Cell(r-1, col), g.Cell(r+1, col); isRoom(a) && isRoom(b) {
			joints = append(joints, joint{wall: c, a: a, b: b})
		}
	})
	g.Shuffle(len(joints), func(i, j int) { joints[i], joints[j] = joints[j], joints[i] })

	// 3) Knock down walls that join two sets.
	res := &Result{Visited: len(parent)}
	for _, j := range joints {
		if err := observe.Checkpoint(o.Ctx, o.Canceller); err != nil {
			return res, err
		}
		res.Steps++
		// a wall already knocked down for the other axis is no longer a barrier
		if j.wall.IsBarrier() && union(j.a, j.b) {
			j.wall.Reset()
			res.Carved++
		}
		o.Notifier.NotifyProgress()
	}

	return res, nil
}

// isRoom reports whether c exists and is not a barrier.
func isRoom(c *grid.Cell) bool {
	return c != nil && !c.IsBarrier()
}
