// Package search defines options, results, and sentinel errors for the
// grid traversals (A*, BFS, DFS).
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/observe"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrMissingEndpoint is returned when start or end is nil. No cell is touched.
	ErrMissingEndpoint = errors.New("search: start and end must both be set")

	// ErrForeignCell is returned when start or end does not belong to the grid.
	ErrForeignCell = errors.New("search: endpoint does not belong to grid")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run for unsupported names.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Option configures a search run via functional arguments.
type Option func(*Options)

// Options holds the collaborators and hooks of a single run.
type Options struct {
	// Ctx allows cancellation; checked once per main-loop iteration.
	Ctx context.Context

	// Notifier is called after each processed cell and once per revealed
	// path cell. It must block until the frame is presented.
	Notifier observe.Notifier

	// Canceller is polled once per main-loop iteration, alongside Ctx.
	Canceller observe.Canceller

	// OnRelax is called by A* whenever a neighbor's g-score improves.
	OnRelax func(c *grid.Cell, g float64)

	// OnVisit is called when a cell is expanded (A*) or first marked visited (BFS/DFS).
	OnVisit func(c *grid.Cell)
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - no-op Notifier, never-cancelling Canceller
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Notifier:  observe.Nop,
		Canceller: observe.Never,
		OnRelax:   func(*grid.Cell, float64) {},
		OnVisit:   func(*grid.Cell) {},
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

// WithOnRelax registers a hook for A* g-score improvements.
func WithOnRelax(fn func(c *grid.Cell, g float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnVisit registers a hook for expanded/visited cells.
func WithOnVisit(fn func(c *grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a run:
//   - Found: whether end was reached.
//   - CameFrom: predecessor links recorded during the run.
//   - Path: start → end inclusive when Found, nil otherwise.
//   - Expanded: number of main-loop iterations (frontier pops).
type Result struct {
	Found    bool
	CameFrom map[*grid.Cell]*grid.Cell
	Path     []*grid.Cell
	Expanded int
}

// Len returns the number of cells on the path (0 when not found).
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Path)
}

// Algorithm selects one of the supported traversals.
type Algorithm int

const (
	// AlgoAStar is A* with the Manhattan heuristic.
	AlgoAStar Algorithm = iota
	// AlgoBFS is breadth-first search.
	AlgoBFS
	// AlgoDFS is depth-first search.
	AlgoDFS
)

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	switch a {
	case AlgoAStar:
		return "astar"
	case AlgoBFS:
		return "bfs"
	case AlgoDFS:
		return "dfs"
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm accepts "astar", "a*", "a", "bfs", "b", "dfs" or "d",
// case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar", "a*", "a":
		return AlgoAStar, nil
	case "bfs", "b":
		return AlgoBFS, nil
	case "dfs", "d":
		return AlgoDFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}
