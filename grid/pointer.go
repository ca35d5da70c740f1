package grid

import "fmt"

// PointerToCell maps a pointer position (x, y) in pixels on a square board of
// widthPx pixels to (row, col) for a grid with rows cells per side.
//
// Cells are drawn with the row index along the horizontal axis, so x selects
// the row and y the column. Cell size is widthPx/rows (integer division);
// pixels past rows*gap map outside the grid and yield ErrOutOfBounds.
//
// Returns ErrInvalidSize if rows < 1 or widthPx < rows.
// Complexity: O(1).
func PointerToCell(x, y, widthPx, rows int) (row, col int, err error) {
	if rows < 1 || widthPx < rows {
		return 0, 0, fmt.Errorf("%w: width %dpx for %d rows", ErrInvalidSize, widthPx, rows)
	}
	if x < 0 || y < 0 {
		return 0, 0, fmt.Errorf("%w: pointer (%d,%d)", ErrOutOfBounds, x, y)
	}
	gap := widthPx / rows
	row, col = x/gap, y/gap
	if row >= rows || col >= rows {
		return 0, 0, fmt.Errorf("%w: pointer (%d,%d) → (%d,%d)", ErrOutOfBounds, x, y, row, col)
	}

	return row, col, nil
}

// CellAtPointer resolves a pointer position on a board of widthPx pixels to
// the grid cell under it.
func (g *Grid) CellAtPointer(x, y, widthPx int) (*Cell, error) {
	row, col, err := PointerToCell(x, y, widthPx, g.size)
	if err != nil {
		return nil, err
	}
	return g.cells[row][col], nil
}
