package search

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/observe"
)

// walker encapsulates the state shared by every traversal.
type walker struct {
	grid       *grid.Grid
	start, end *grid.Cell
	opts       Options
	res        *Result
}

// newWalker validates the inputs and builds options. It touches no cell, so a
// rejected call leaves the grid exactly as it was.
func newWalker(g *grid.Grid, start, end *grid.Cell, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if start == nil || end == nil {
		return nil, ErrMissingEndpoint
	}
	if !g.Owns(start) || !g.Owns(end) {
		return nil, fmt.Errorf("%w: start %v, end %v", ErrForeignCell, start, end)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &walker{
		grid:  g,
		start: start,
		end:   end,
		opts:  o,
		res: &Result{
			CameFrom: make(map[*grid.Cell]*grid.Cell),
		},
	}, nil
}

// checkpoint polls context and Canceller once per iteration.
func (w *walker) checkpoint() error {
	return observe.Checkpoint(w.opts.Ctx, w.opts.Canceller)
}

// redraw hands control to the renderer and waits for it.
func (w *walker) redraw() {
	w.opts.Notifier.NotifyProgress()
}

// discover marks a freshly queued neighbor Open, leaving the endpoints alone.
func (w *walker) discover(c *grid.Cell) {
	if c != w.start && c != w.end {
		c.MarkOpen()
	}
}

// settle marks a processed cell Closed unless it is the start.
func (w *walker) settle(c *grid.Cell) {
	if c != w.start {
		c.MarkClosed()
	}
}

// succeed reconstructs the path to end, restores end's tag and fills Path.
func (w *walker) succeed() *Result {
	walked := Reconstruct(w.res.CameFrom, w.end, w.opts.Notifier)
	w.end.MarkEnd()

	path := make([]*grid.Cell, len(walked))
	for i, c := range walked {
		path[len(walked)-1-i] = c
	}
	w.res.Found = true
	w.res.Path = path

	return w.res
}
