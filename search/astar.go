package search

import (
	"container/heap"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathviz/grid"
)

// Manhattan returns |Δrow| + |Δcol| between a and b, the A* heuristic.
// Admissible and consistent for unit-cost 4-directional moves.
func Manhattan(a, b *grid.Cell) int {
	dr, dc := a.Row()-b.Row(), a.Col()-b.Col()
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// AStar searches from start to end with A*: a min-priority queue keyed by
// (f-score, insertion sequence), unit edge costs and the Manhattan heuristic.
//
// Per iteration: pop the minimum; stop with success if it is end; otherwise
// relax each cached neighbor (g+1), recording predecessor and scores on
// improvement and queueing it (Open) unless already pending; then redraw and
// mark the popped cell Closed unless it is start.
//
// Returns Found=false with a nil error if the queue empties first.
//
// Complexity: O(N² log N²) time, O(N²) memory.
func AStar(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}
	r := &astarRunner{
		walker:  w,
		gScore:  make(map[*grid.Cell]float64),
		fScore:  make(map[*grid.Cell]float64),
		pending: mapset.New[*grid.Cell](),
	}
	r.init()

	return r.process()
}

// astarRunner holds the mutable state for a single A* execution.
type astarRunner struct {
	*walker
	gScore  map[*grid.Cell]float64 // best known cost from start; missing = +Inf
	fScore  map[*grid.Cell]float64 // gScore + heuristic; missing = +Inf
	pq      openPQ                 // min-heap on (f, seq)
	pending mapset.Set[*grid.Cell] // cells currently in pq
	seq     int                    // monotonic insertion counter
}

// score reads m[c], defaulting to +Inf.
func score(m map[*grid.Cell]float64, c *grid.Cell) float64 {
	if v, ok := m[c]; ok {
		return v
	}
	return math.Inf(1)
}

// init seeds g[start]=0, f[start]=h(start,end) and pushes (f, 0, start).
func (r *astarRunner) init() {
	r.gScore[r.start] = 0
	r.fScore[r.start] = float64(Manhattan(r.start, r.end))
	heap.Init(&r.pq)
	heap.Push(&r.pq, &openItem{f: r.fScore[r.start], seq: r.seq, cell: r.start})
	r.pending.Put(r.start)
}

// process is the main loop.
func (r *astarRunner) process() (*Result, error) {
	for r.pq.Len() > 0 {
		if err := r.checkpoint(); err != nil {
			return r.res, err
		}

		cur := heap.Pop(&r.pq).(*openItem).cell
		r.pending.Remove(cur)
		r.res.Expanded++

		if cur == r.end {
			return r.succeed(), nil
		}
		r.opts.OnVisit(cur)
		r.relax(cur)

		r.redraw()
		r.settle(cur)
	}

	return r.res, nil
}

// relax examines cur's cached neighbors and improves their scores.
func (r *astarRunner) relax(cur *grid.Cell) {
	tentative := r.gScore[cur] + 1
	for _, nb := range cur.Neighbors() {
		if tentative >= score(r.gScore, nb) {
			continue
		}
		r.res.CameFrom[nb] = cur
		r.gScore[nb] = tentative
		r.fScore[nb] = tentative + float64(Manhattan(nb, r.end))
		r.opts.OnRelax(nb, tentative)

		if r.pending.Has(nb) {
			continue
		}
		r.seq++
		heap.Push(&r.pq, &openItem{f: r.fScore[nb], seq: r.seq, cell: nb})
		r.pending.Put(nb)
		r.discover(nb)
	}
}

// openItem is a queued cell with its f-score at push time and its insertion
// sequence number.
type openItem struct {
	f    float64
	seq  int
	cell *grid.Cell
}

// openPQ is a min-heap of *openItem ordered lexicographically by (f, seq):
// among equal f-scores the earliest inserted wins.
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be *openItem. Called by heap.Push.
func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
