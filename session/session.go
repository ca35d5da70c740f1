package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/maze"
	"github.com/katalvlaran/pathviz/observe"
	"github.com/katalvlaran/pathviz/search"
)

// captions shown while a key's run is in progress.
var captions = map[Key]string{
	KeyMaze:    "Maze generating...",
	KeyKruskal: "Maze generating...",
	KeyBFS:     "BFS",
	KeyDFS:     "DFS",
	KeyAStar:   "A*",
}

// algorithms maps search keys to their traversal.
var algorithms = map[Key]search.Algorithm{
	KeyBFS:   search.AlgoBFS,
	KeyDFS:   search.AlgoDFS,
	KeyAStar: search.AlgoAStar,
}

// KeyFor returns the key that runs algo.
func KeyFor(algo search.Algorithm) Key {
	for k, a := range algorithms {
		if a == algo {
			return k
		}
	}
	return KeyAStar
}

// Session owns a board, the Start/End handles and the run history.
type Session struct {
	cfg        config.Config
	g          *grid.Grid
	r          Renderer
	start, end *grid.Cell
	opts       Options
	history    []Run
	frames     int
}

// New builds an N×N board from cfg, applies the checkerboard layout and
// returns a session rendering to r. A nil r discards frames.
func New(cfg config.Config, r Renderer, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g, err := grid.NewGrid(cfg.Rows, grid.WithSeed(cfg.Seed))
	if err != nil {
		return nil, err
	}
	g.ApplyCheckerboard()
	if r == nil {
		r = discard{}
	}

	return &Session{cfg: cfg, g: g, r: r, opts: o}, nil
}

// Grid returns the board. KeyClear replaces its cells.
func (s *Session) Grid() *grid.Grid { return s.g }

// Start returns the Start cell, or nil.
func (s *Session) Start() *grid.Cell { return s.start }

// End returns the End cell, or nil.
func (s *Session) End() *grid.Cell { return s.end }

// Frames reports how many frames were sent to the renderer.
func (s *Session) Frames() int { return s.frames }

// History returns a copy of the recorded runs, oldest first.
func (s *Session) History() []Run {
	out := make([]Run, len(s.history))
	copy(out, s.history)
	return out
}

// Draw sends the current board to the renderer. Render errors are logged,
// not returned: a broken sink never aborts a run.
func (s *Session) Draw() {
	s.frames++
	if err := s.r.Render(s.g); err != nil {
		s.opts.Logger.WithError(err).WithField("frame", s.frames).Warn("render failed")
	}
}

// PrimaryAt applies a left click at pixel (x, y).
func (s *Session) PrimaryAt(x, y int) error {
	c, err := s.g.CellAtPointer(x, y, s.cfg.WidthPx)
	if err != nil {
		return err
	}
	if c.IsBarrier() {
		return nil
	}
	switch {
	case s.start == nil && c != s.end:
		s.start = c
		c.MarkStart()
	case s.end == nil && c != s.start:
		s.end = c
		c.MarkEnd()
	case c != s.start && c != s.end:
		c.MarkBarrier()
	}
	return nil
}

// SecondaryAt applies a right click at pixel (x, y).
func (s *Session) SecondaryAt(x, y int) error {
	c, err := s.g.CellAtPointer(x, y, s.cfg.WidthPx)
	if err != nil {
		return err
	}
	c.Reset()
	switch c {
	case s.start:
		s.start = nil
	case s.end:
		s.end = nil
	}
	return nil
}

// Press handles a command key. Maze and search keys return the recorded Run;
// KeyClear returns a nil Run. A cancelled run is still recorded and returned
// together with the cancellation error.
func (s *Session) Press(ctx context.Context, k Key) (*Run, error) {
	if caption, ok := captions[k]; ok {
		s.r.SetCaption(caption)
	}

	switch k {
	case KeyMaze, KeyKruskal:
		if s.start != nil || s.end != nil {
			return nil, fmt.Errorf("%w: maze needs an empty board", ErrPreconditions)
		}
		return s.generate(ctx, k)

	case KeyBFS, KeyDFS, KeyAStar:
		if s.start == nil || s.end == nil {
			return nil, fmt.Errorf("%w: %s needs start and end", ErrPreconditions, k)
		}
		return s.search(ctx, algorithms[k])

	case KeyClear:
		s.start, s.end = nil, nil
		s.g.Rebuild()
		s.opts.Logger.Debug("board cleared")
		s.Draw()
		return nil, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownKey, k)
}

// notifier renders one frame per progress notification.
func (s *Session) notifier() observe.Notifier {
	return observe.NotifyFunc(s.Draw)
}

func (s *Session) generate(ctx context.Context, k Key) (*Run, error) {
	carve, name := maze.Generate, "maze"
	if k == KeyKruskal {
		carve, name = maze.Kruskal, "kruskal"
	}
	run := Run{ID: uuid.New(), Algorithm: name}
	began := s.opts.Now()

	res, err := carve(s.g,
		maze.WithContext(ctx),
		maze.WithNotifier(s.notifier()),
		maze.WithCanceller(s.opts.Canceller),
	)
	run.Duration = s.opts.Now().Sub(began)
	if res != nil {
		run.Expanded, run.Carved = res.Steps, res.Carved
	}

	return s.record(run, err)
}

func (s *Session) search(ctx context.Context, algo search.Algorithm) (*Run, error) {
	run := Run{ID: uuid.New(), Algorithm: algo.String()}
	s.g.RefreshNeighbors()
	s.g.ClearSearch()
	began := s.opts.Now()

	res, err := search.Run(algo, s.g, s.start, s.end,
		search.WithContext(ctx),
		search.WithNotifier(s.notifier()),
		search.WithCanceller(s.opts.Canceller),
	)
	run.Duration = s.opts.Now().Sub(began)
	if res != nil {
		run.Found, run.Expanded, run.PathLen = res.Found, res.Expanded, res.Len()
	}

	return s.record(run, err)
}

// record appends run to the history, logs it and passes err through.
func (s *Session) record(run Run, err error) (*Run, error) {
	run.Err = err
	s.history = append(s.history, run)

	entry := s.opts.Logger.WithFields(run.Fields())
	if err != nil {
		entry.WithError(err).Warn("run stopped")
	} else {
		entry.Info("run finished")
	}
	return &run, err
}

// discard is the Renderer used when none is given.
type discard struct{}

func (discard) Render(*grid.Grid) error { return nil }
func (discard) SetCaption(string)       {}
