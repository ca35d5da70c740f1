package search

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathviz/grid"
)

// frontierItem pairs a queued cell with the cell that queued it.
// parent is nil for the start.
type frontierItem struct {
	cell   *grid.Cell
	parent *grid.Cell
}

// BFS searches from start to end breadth-first over the cached neighbors.
//
// Per iteration: dequeue; the first dequeue of a cell fixes its predecessor;
// stop with success if it is end; otherwise, if not yet visited, mark it
// visited and queue every unvisited neighbor (Open unless start/end). Then
// redraw and mark the dequeued cell Closed unless it is start.
//
// A cell may sit in the queue several times (once per distinct queuing
// neighbor); the visited guard prevents reprocessing, and because the first
// dequeue wins, the reconstructed path is a shortest path.
//
// Returns Found=false with a nil error if the queue empties first.
// Complexity: O(N²) time and memory.
func BFS(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}
	t := &traversal{walker: w, visited: mapset.New[*grid.Cell]()}
	t.push(frontierItem{cell: start})

	return t.loop(t.dequeue)
}

// DFS searches from start to end depth-first, with the same bookkeeping as
// BFS but a LIFO stack. The path found is valid but not necessarily
// shortest; exploration order follows the shuffled neighbor caches.
//
// Returns Found=false with a nil error if the stack empties first.
// Complexity: O(N²) time and memory.
func DFS(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}
	t := &traversal{walker: w, visited: mapset.New[*grid.Cell]()}
	t.push(frontierItem{cell: start})

	return t.loop(t.pop)
}

// traversal is the state shared by BFS and DFS; they differ only in which
// end of the frontier is taken.
type traversal struct {
	*walker
	frontier []frontierItem
	visited  mapset.Set[*grid.Cell]
}

func (t *traversal) push(it frontierItem) { t.frontier = append(t.frontier, it) }

// dequeue takes from the front (FIFO).
func (t *traversal) dequeue() frontierItem {
	it := t.frontier[0]
	t.frontier[0] = frontierItem{}
	t.frontier = t.frontier[1:]
	return it
}

// pop takes from the back (LIFO).
func (t *traversal) pop() frontierItem {
	n := len(t.frontier)
	it := t.frontier[n-1]
	t.frontier = t.frontier[:n-1]
	return it
}

// loop processes the frontier until empty, success, or cancellation.
func (t *traversal) loop(next func() frontierItem) (*Result, error) {
	for len(t.frontier) > 0 {
		if err := t.checkpoint(); err != nil {
			return t.res, err
		}

		it := next()
		cur := it.cell
		t.res.Expanded++
		// first dequeue wins
		if _, seen := t.res.CameFrom[cur]; !seen && it.parent != nil {
			t.res.CameFrom[cur] = it.parent
		}

		if cur == t.end {
			return t.succeed(), nil
		}

		if !t.visited.Has(cur) {
			t.visited.Put(cur)
			t.opts.OnVisit(cur)
			for _, nb := range cur.Neighbors() {
				if t.visited.Has(nb) {
					continue
				}
				t.push(frontierItem{cell: nb, parent: cur})
				t.discover(nb)
			}
		}

		t.redraw()
		t.settle(cur)
	}

	return t.res, nil
}
