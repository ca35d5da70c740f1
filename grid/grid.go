package grid

import (
	"fmt"
	"strings"
)

// NewGrid builds an n×n grid of Empty cells with empty neighbor caches.
// Returns ErrInvalidSize if n < 1.
// Complexity: O(n²) time and memory.
func NewGrid(n int, opts ...Option) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := o.Rand
	if r == nil {
		r = rngFromSeed(o.Seed)
	}
	g := &Grid{size: n, rng: r}
	g.build()

	return g, nil
}

// build allocates a fresh cell for every (row, col).
func (g *Grid) build() {
	g.cells = make([][]*Cell, g.size)
	for row := 0; row < g.size; row++ {
		g.cells[row] = make([]*Cell, g.size)
		for col := 0; col < g.size; col++ {
			g.cells[row][col] = &Cell{row: row, col: col}
		}
	}
}

// Size returns N, the number of rows (and columns).
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Cell returns the cell at (row, col), or nil when out of bounds.
func (g *Grid) Cell(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// At returns the cell at (row, col) or ErrOutOfBounds.
func (g *Grid) At(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, row, col, g.size, g.size)
	}
	return g.cells[row][col], nil
}

// Owns reports whether c is a cell of this grid (pointer identity, not just
// matching coordinates).
func (g *Grid) Owns(c *Cell) bool {
	return c != nil && g.InBounds(c.row, c.col) && g.cells[c.row][c.col] == c
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// Count returns how many cells currently hold state s.
func (g *Grid) Count(s State) int {
	n := 0
	g.Each(func(c *Cell) {
		if c.state == s {
			n++
		}
	})
	return n
}

// Reset sets every cell to Empty and drops all neighbor caches.
// Cell identities are preserved.
func (g *Grid) Reset() {
	g.Each(func(c *Cell) {
		c.state = Empty
		c.neighbors = nil
		c.walls = nil
	})
}

// Rebuild discards all cells, allocates fresh ones and applies the
// checkerboard layout. Pointers obtained before Rebuild no longer belong
// to the grid.
func (g *Grid) Rebuild() {
	g.build()
	g.ApplyCheckerboard()
}

// ClearSearch resets Open, Closed and Path cells to Empty, leaving barriers
// and the start/end markers in place.
func (g *Grid) ClearSearch() {
	g.Each(func(c *Cell) {
		switch c.state {
		case Open, Closed, Path:
			c.state = Empty
		}
	})
}

// ApplyCheckerboard lays out the demo barrier pattern: every even row is
// fully barrier, and on odd rows every even column is barrier.
// Complexity: O(N²).
func (g *Grid) ApplyCheckerboard() {
	g.Each(func(c *Cell) {
		if c.row%2 == 0 || c.col%2 == 0 {
			c.state = Barrier
		}
	})
}

// glyphs maps states to the runes used by String.
var glyphs = [...]byte{
	Empty:   '.',
	Open:    'o',
	Closed:  'x',
	Barrier: '#',
	Start:   'S',
	End:     'E',
	Path:    'p',
}

// Glyph returns the single-character rendering of s.
func Glyph(s State) byte {
	if int(s) < len(glyphs) {
		return glyphs[s]
	}
	return '?'
}

// String renders the grid one row per line, one glyph per cell.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for _, row := range g.cells {
		for _, c := range row {
			b.WriteByte(Glyph(c.state))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
