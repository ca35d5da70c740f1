package render_test

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/render"
)

// sample returns a 4×4 grid with one cell of each interesting state.
func sample(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(4)
	require.NoError(t, err)
	g.Cell(0, 0).MarkStart()
	g.Cell(3, 3).MarkEnd()
	g.Cell(1, 2).MarkBarrier()
	g.Cell(2, 0).MarkOpen()
	g.Cell(2, 1).MarkClosed()
	g.Cell(0, 1).MarkPath()
	return g
}

func TestText_CaptionAndStride(t *testing.T) {
	var buf bytes.Buffer
	tr := render.NewText(&buf, render.WithStride(2))
	g := sample(t)

	tr.SetCaption("BFS")
	for i := 0; i < 3; i++ {
		require.NoError(t, tr.Render(g))
	}
	assert.Equal(t, 2, tr.Frames())

	frame := "== BFS ==\nSp..\n..#.\nox..\n...E\n\n"
	assert.Equal(t, frame+frame, buf.String())
}

func TestPNG_WritesFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	p, err := render.NewPNG(dir, 40)
	require.NoError(t, err)
	g := sample(t)

	require.NoError(t, p.Render(g))
	require.NoError(t, p.Render(g))
	assert.Equal(t, 2, p.Frames())

	for _, name := range []string{"frame_00000.png", "frame_00001.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size())
	}
}

func TestPNG_Image(t *testing.T) {
	p, err := render.NewPNG(t.TempDir(), 42) // 10px cells, 40px image
	require.NoError(t, err)
	img, err := p.Image(sample(t))
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())

	// x carries the row, y the column; sample the centre of each cell
	at := func(row, col int) color.RGBA {
		return color.RGBAModel.Convert(img.At(row*10+5, col*10+5)).(color.RGBA)
	}
	assert.Equal(t, render.Orange, at(0, 0))
	assert.Equal(t, render.Turquoise, at(3, 3))
	assert.Equal(t, render.White, at(1, 2))
	assert.Equal(t, render.Green, at(2, 0))
	assert.Equal(t, render.Red, at(2, 1))
	assert.Equal(t, render.Purple, at(0, 1))
	assert.Equal(t, render.Black, at(1, 1))
}

func TestPNG_Errors(t *testing.T) {
	_, err := render.NewPNG("", 100)
	assert.ErrorIs(t, err, render.ErrNoDir)
	_, err = render.NewPNG(t.TempDir(), 0)
	assert.ErrorIs(t, err, render.ErrTooSmall)

	p, err := render.NewPNG(t.TempDir(), 3)
	require.NoError(t, err)
	assert.ErrorIs(t, p.Render(sample(t)), render.ErrTooSmall)
	assert.Zero(t, p.Frames())
}

func TestPalette_Color(t *testing.T) {
	p := render.DefaultPalette()
	for _, s := range grid.States() {
		_, ok := p[s]
		assert.True(t, ok, s.String())
	}
	assert.Equal(t, render.Black, render.Palette{}.Color(grid.Path))
}

// failing is a sink whose Render always errors.
type failing struct{ caption string }

func (f *failing) Render(*grid.Grid) error { return errors.New("boom") }
func (f *failing) SetCaption(c string)     { f.caption = c }

func TestMulti(t *testing.T) {
	var buf bytes.Buffer
	tr := render.NewText(&buf)
	bad := &failing{}
	m := render.Multi{bad, tr}

	m.SetCaption("A*")
	err := m.Render(sample(t))
	assert.EqualError(t, err, "boom")
	assert.Equal(t, "A*", bad.caption)
	assert.Equal(t, 1, tr.Frames(), "later sinks still render")
}
