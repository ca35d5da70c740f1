package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/observe"
)

// Sentinel errors for the session driver.
var (
	// ErrPreconditions is returned when a key is pressed in a state that does
	// not allow it (e.g. a search without both endpoints).
	ErrPreconditions = errors.New("session: preconditions not met")

	// ErrUnknownKey is returned for keys outside the Key enum.
	ErrUnknownKey = errors.New("session: unknown key")
)

// Renderer receives frames and window captions.
type Renderer interface {
	Render(g *grid.Grid) error
	SetCaption(caption string)
}

// Key is a command key.
type Key int

const (
	// KeyMaze generates a maze (space bar).
	KeyMaze Key = iota
	// KeyBFS runs breadth-first search (b).
	KeyBFS
	// KeyDFS runs depth-first search (d).
	KeyDFS
	// KeyAStar runs A* (a).
	KeyAStar
	// KeyClear resets the board (c).
	KeyClear
	// KeyKruskal generates a maze with randomized Kruskal (k).
	KeyKruskal
)

// String returns the key's caption-friendly name.
func (k Key) String() string {
	switch k {
	case KeyMaze:
		return "maze"
	case KeyBFS:
		return "bfs"
	case KeyDFS:
		return "dfs"
	case KeyAStar:
		return "astar"
	case KeyClear:
		return "clear"
	case KeyKruskal:
		return "kruskal"
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// KeyForRune maps the visualizer's keyboard bindings to keys.
func KeyForRune(r rune) (Key, error) {
	switch r {
	case ' ':
		return KeyMaze, nil
	case 'b', 'B':
		return KeyBFS, nil
	case 'd', 'D':
		return KeyDFS, nil
	case 'a', 'A':
		return KeyAStar, nil
	case 'c', 'C':
		return KeyClear, nil
	case 'k', 'K':
		return KeyKruskal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, r)
	}
}

// Run records one maze generation or search.
type Run struct {
	ID        uuid.UUID
	Algorithm string // "maze", "kruskal", "astar", "bfs" or "dfs"
	Found     bool   // searches only
	Expanded  int    // frontier pops (stack pops for the maze)
	PathLen   int    // cells on the path, start and end included
	Carved    int    // walls knocked down (mazes only)
	Duration  time.Duration
	Err       error // non-nil when the run was cancelled
}

// Fields returns the run as structured log fields.
func (r Run) Fields() logrus.Fields {
	f := logrus.Fields{
		"run_id":    r.ID.String(),
		"algorithm": r.Algorithm,
		"expanded":  r.Expanded,
		"duration":  r.Duration,
	}
	if r.Algorithm == "maze" || r.Algorithm == "kruskal" {
		f["carved"] = r.Carved
	} else {
		f["found"] = r.Found
		f["path_len"] = r.PathLen
	}
	return f
}

// Options configures a Session.
type Options struct {
	// Logger receives run and render diagnostics.
	Logger logrus.FieldLogger
	// Canceller is polled once per algorithm iteration.
	Canceller observe.Canceller
	// Now is the clock used for run durations.
	Now func() time.Time
}

// Option configures a Session via functional arguments.
type Option func(*Options)

// DefaultOptions returns the standard logrus logger, no cancellation and the
// wall clock.
func DefaultOptions() Options {
	return Options{
		Logger:    logrus.StandardLogger(),
		Canceller: observe.Never,
		Now:       time.Now,
	}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCanceller installs a cancellation poller shared by all runs.
func WithCanceller(c observe.Canceller) Option {
	return func(o *Options) {
		if c != nil {
			o.Canceller = c
		}
	}
}

// WithClock replaces the clock used for run durations.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}
