package render

import (
	"errors"
	"image/color"

	"github.com/katalvlaran/pathviz/grid"
)

// Sentinel errors for renderers.
var (
	// ErrNoDir is returned when a PNG renderer is built without a directory.
	ErrNoDir = errors.New("render: frame directory is empty")

	// ErrTooSmall is returned when the board is narrower than one pixel per cell.
	ErrTooSmall = errors.New("render: board too small for grid")
)

// Palette maps each cell state to its fill colour.
type Palette map[grid.State]color.RGBA

// Colours of the classic visualizer theme.
var (
	Black     = color.RGBA{0, 0, 0, 255}
	White     = color.RGBA{255, 255, 255, 255}
	Red       = color.RGBA{255, 0, 0, 255}
	Green     = color.RGBA{0, 255, 0, 255}
	Yellow    = color.RGBA{255, 255, 0, 255}
	Purple    = color.RGBA{128, 0, 128, 255}
	Orange    = color.RGBA{255, 165, 0, 255}
	Grey      = color.RGBA{128, 128, 128, 255}
	Turquoise = color.RGBA{64, 224, 208, 255}
)

// DefaultPalette returns the classic theme: empty black, barrier white,
// start orange, end turquoise, open green, closed red, path purple.
func DefaultPalette() Palette {
	return Palette{
		grid.Empty:   Black,
		grid.Barrier: White,
		grid.Start:   Orange,
		grid.End:     Turquoise,
		grid.Open:    Green,
		grid.Closed:  Red,
		grid.Path:    Purple,
	}
}

// Color returns the colour for s, Black if the palette has none.
func (p Palette) Color(s grid.State) color.RGBA {
	if c, ok := p[s]; ok {
		return c
	}
	return Black
}

// Options configures the renderers. Fields a renderer has no use for are ignored.
type Options struct {
	// Stride keeps every Stride-th frame (first one included). Default 1.
	Stride int
	// Palette colours cells (PNG only).
	Palette Palette
	// GridLines draws grey cell borders (PNG only).
	GridLines bool
}

// Option configures a renderer via functional arguments.
type Option func(*Options)

// DefaultOptions returns stride 1, the default palette and no grid lines.
func DefaultOptions() Options {
	return Options{Stride: 1, Palette: DefaultPalette()}
}

// WithStride keeps only every k-th frame. Values below 1 are ignored.
func WithStride(k int) Option {
	return func(o *Options) {
		if k >= 1 {
			o.Stride = k
		}
	}
}

// WithPalette replaces the colour theme.
func WithPalette(p Palette) Option {
	return func(o *Options) {
		if p != nil {
			o.Palette = p
		}
	}
}

// WithGridLines toggles grey cell borders.
func WithGridLines(on bool) Option {
	return func(o *Options) {
		o.GridLines = on
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// strider decides which of the incoming frames are kept.
type strider struct {
	stride int
	seen   int
}

// keep counts a frame and reports whether it is on the stride.
func (s *strider) keep() bool {
	keep := s.seen%s.stride == 0
	s.seen++
	return keep
}
