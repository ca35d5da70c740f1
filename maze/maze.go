package maze

import (
	"context"
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/observe"
)

// Sentinel errors for maze generation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrOriginOutOfBounds is returned when the carving origin lies outside the grid.
	ErrOriginOutOfBounds = errors.New("maze: origin out of bounds")
)

// Options configures Generate.
type Options struct {
	// Ctx allows cancellation; checked once per iteration.
	Ctx context.Context
	// Notifier is called after every stack pop.
	Notifier observe.Notifier
	// Canceller is polled once per iteration.
	Canceller observe.Canceller
	// OriginRow, OriginCol locate the first carved cell. Default (1,1).
	OriginRow, OriginCol int
}

// Option configures Generate via functional arguments.
type Option func(*Options)

// DefaultOptions returns background context, no-op collaborators and origin (1,1).
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Notifier:  observe.Nop,
		Canceller: observe.Never,
		OriginRow: 1,
		OriginCol: 1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithNotifier installs the redraw collaborator.
func WithNotifier(n observe.Notifier) Option {
	return func(o *Options) {
		if n != nil {
			o.Notifier = n
		}
	}
}

// WithCanceller installs the cancellation poller.
func WithCanceller(c observe.Canceller) Option {
	return func(o *Options) {
		if c != nil {
			o.Canceller = c
		}
	}
}

// WithOrigin moves the first carved cell.
func WithOrigin(row, col int) Option {
	return func(o *Options) {
		o.OriginRow, o.OriginCol = row, col
	}
}

// Result summarises a generation run.
type Result struct {
	// Visited counts distinct cells reached (origin included).
	Visited int
	// Carved counts walls reset to Empty.
	Carved int
	// Steps counts stack pops, one redraw each.
	Steps int
}

// step is a stack entry: the wall to knock down (nil for the origin) and the
// cell it leads to.
type step struct {
	wall   *grid.Cell
	target *grid.Cell
}

// Generate carves a maze into g in place. See the package documentation for
// the algorithm. A cancelled run returns the partial Result and an error
// wrapping observe.ErrCancelled; cells carved so far stay carved.
//
// Complexity: O(N²) time and memory.
func Generate(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	origin := g.Cell(o.OriginRow, o.OriginCol)
	if origin == nil {
		return nil, fmt.Errorf("%w: (%d,%d) in %d×%d grid",
			ErrOriginOutOfBounds, o.OriginRow, o.OriginCol, g.Size(), g.Size())
	}

	res := &Result{}
	visited := mapset.New[*grid.Cell]()
	stack := []step{{target: origin}}

	for len(stack) > 0 {
		if err := observe.Checkpoint(o.Ctx, o.Canceller); err != nil {
			return res, err
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res.Steps++

		if !visited.Has(cur.target) {
			visited.Put(cur.target)
			res.Visited++
			if cur.wall != nil {
				cur.wall.Reset()
				res.Carved++
			}
			// wall neighbors reflect the current layout, including earlier carving
			for _, wn := range g.ComputeWallNeighbors(cur.target) {
				if !visited.Has(wn.Target) {
					stack = append(stack, step{wall: wn.Wall, target: wn.Target})
				}
			}
		}
		o.Notifier.NotifyProgress()
	}

	return res, nil
}

// IsPerfect reports whether the non-barrier cells of g form a single
// 4-connected region whose adjacency graph is a tree, i.e. there is exactly
// one simple path between any two open cells.
//
// Complexity: O(N²).
func IsPerfect(g *grid.Grid) bool {
	if g == nil {
		return false
	}
	comps := g.ConnectedComponents()
	if len(comps) != 1 {
		return false
	}
	return g.OpenEdges() == len(comps[0])-1
}
