// Package grid defines core types, options, and sentinel errors
// for the grid package of github.com/katalvlaran/pathviz.
package grid

import (
	"errors"
	"math/rand"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a non-positive grid dimension or a pixel width
	// that cannot hold one pixel per cell.
	ErrInvalidSize = errors.New("grid: size must be positive")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
)

// State is the visual/search state of a cell. The seven states are mutually
// exclusive; a cell holds exactly one at a time.
type State uint8

const (
	// Empty is an untouched, walkable cell.
	Empty State = iota
	// Open marks a cell discovered by a search and pending processing.
	Open
	// Closed marks a cell fully processed by a search.
	Closed
	// Barrier marks an impassable cell.
	Barrier
	// Start marks the search origin.
	Start
	// End marks the search goal.
	End
	// Path marks a cell on the reconstructed path.
	Path
)

var stateNames = [...]string{
	Empty:   "empty",
	Open:    "open",
	Closed:  "closed",
	Barrier: "barrier",
	Start:   "start",
	End:     "end",
	Path:    "path",
}

// String returns the lower-case name of the state.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// States lists every State in declaration order.
func States() []State {
	return []State{Empty, Open, Closed, Barrier, Start, End, Path}
}

// Cell is a single grid unit. Its position never changes after creation;
// its state is overwritten freely by traversals and by user input.
//
// The neighbor slices hold non-owning pointers into the owning Grid and are
// only refreshed by the Grid's neighbor resolver.
type Cell struct {
	row, col  int
	state     State
	neighbors []*Cell
	walls     []WallNeighbor
}

// WallNeighbor pairs a cell two steps away (Target) with the cell between
// them (Wall). Maze carving resets Wall to Empty to join the two.
type WallNeighbor struct {
	Wall   *Cell
	Target *Cell
}

// Options holds construction parameters for NewGrid.
type Options struct {
	// Seed feeds the neighbor-shuffling RNG. Zero selects a fixed default seed.
	Seed int64
	// Rand, if non-nil, is used instead of a Seed-derived source.
	Rand *rand.Rand
}

// Option configures NewGrid.
type Option func(*Options)

// DefaultOptions returns Options with Seed=0 (default seed) and no explicit Rand.
func DefaultOptions() Options {
	return Options{}
}

// WithSeed sets the RNG seed used for neighbor shuffling.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand installs a caller-owned RNG. A nil r keeps the seeded default.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// Grid is a square N×N board. It owns every Cell exclusively.
type Grid struct {
	size  int
	cells [][]*Cell
	rng   *rand.Rand
}
