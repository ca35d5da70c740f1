package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/pathviz/grid"
)

// PNG rasterises frames into numbered PNG files, one square of
// widthPx/N pixels per cell.
type PNG struct {
	dir     string
	widthPx int
	opts    Options
	caption string
	frames  int
	strider
}

// NewPNG creates dir if needed and returns a PNG renderer for a board
// widthPx pixels wide.
func NewPNG(dir string, widthPx int, opts ...Option) (*PNG, error) {
	if dir == "" {
		return nil, ErrNoDir
	}
	if widthPx < 1 {
		return nil, fmt.Errorf("%w: width %dpx", ErrTooSmall, widthPx)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: create %s: %w", dir, err)
	}
	o := buildOptions(opts)

	return &PNG{dir: dir, widthPx: widthPx, opts: o, strider: strider{stride: o.Stride}}, nil
}

// SetCaption sets the text stamped in the top-left corner of later frames.
func (p *PNG) SetCaption(caption string) { p.caption = caption }

// Render writes g to the next frame file if the frame is on the stride.
func (p *PNG) Render(g *grid.Grid) error {
	if !p.keep() {
		return nil
	}
	img, err := p.Image(g)
	if err != nil {
		return err
	}
	path := filepath.Join(p.dir, fmt.Sprintf("frame_%05d.png", p.frames))
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	p.frames++
	return nil
}

// Image rasterises g without writing it.
func (p *PNG) Image(g *grid.Grid) (image.Image, error) {
	n := g.Size()
	gap := p.widthPx / n
	if gap == 0 {
		return nil, fmt.Errorf("%w: %dpx for %d rows", ErrTooSmall, p.widthPx, n)
	}
	side := float64(gap * n)
	cell := float64(gap)

	dc := gg.NewContext(gap*n, gap*n)
	dc.SetColor(p.opts.Palette.Color(grid.Empty))
	dc.Clear()

	g.Each(func(c *grid.Cell) {
		if c.IsEmpty() {
			return
		}
		dc.SetColor(p.opts.Palette.Color(c.State()))
		dc.DrawRectangle(float64(c.Row())*cell, float64(c.Col())*cell, cell, cell)
		dc.Fill()
	})

	if p.opts.GridLines {
		dc.SetColor(Grey)
		dc.SetLineWidth(1)
		for i := 0; i <= n; i++ {
			at := float64(i) * cell
			dc.DrawLine(0, at, side, at)
			dc.DrawLine(at, 0, at, side)
		}
		dc.Stroke()
	}

	if p.caption != "" {
		dc.SetColor(Yellow)
		dc.DrawString(p.caption, 4, 14)
	}

	return dc.Image(), nil
}

// Frames reports how many files were written.
func (p *PNG) Frames() int { return p.frames }
