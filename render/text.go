package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/pathviz/grid"
)

// Text writes frames as glyph rows (see grid.Glyph), each preceded by the
// current caption when one is set and followed by a blank line.
type Text struct {
	w       io.Writer
	caption string
	frames  int
	strider
}

// NewText returns a Text renderer writing to w.
func NewText(w io.Writer, opts ...Option) *Text {
	o := buildOptions(opts)
	return &Text{w: w, strider: strider{stride: o.Stride}}
}

// SetCaption sets the header written above subsequent frames.
func (t *Text) SetCaption(caption string) { t.caption = caption }

// Render writes g if the frame is on the stride.
func (t *Text) Render(g *grid.Grid) error {
	if !t.keep() {
		return nil
	}
	if t.caption != "" {
		if _, err := fmt.Fprintf(t.w, "== %s ==\n", t.caption); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(t.w, "%s\n", g); err != nil {
		return err
	}
	t.frames++
	return nil
}

// Frames reports how many frames were written.
func (t *Text) Frames() int { return t.frames }
