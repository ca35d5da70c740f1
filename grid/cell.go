package grid

import "fmt"

// Position returns the cell's (row, col).
func (c *Cell) Position() (row, col int) { return c.row, c.col }

// Row returns the cell's row index.
func (c *Cell) Row() int { return c.row }

// Col returns the cell's column index.
func (c *Cell) Col() int { return c.col }

// State returns the current state tag.
func (c *Cell) State() State { return c.state }

// String formats the cell as "(row,col)".
func (c *Cell) String() string { return fmt.Sprintf("(%d,%d)", c.row, c.col) }

// Setters overwrite the state unconditionally; callers decide whether the
// transition makes sense (e.g. not closing the Start cell).

// MarkStart tags the cell as the search origin.
func (c *Cell) MarkStart() { c.state = Start }

// MarkEnd tags the cell as the search goal.
func (c *Cell) MarkEnd() { c.state = End }

// MarkBarrier makes the cell impassable.
func (c *Cell) MarkBarrier() { c.state = Barrier }

// MarkOpen tags the cell as discovered.
func (c *Cell) MarkOpen() { c.state = Open }

// MarkClosed tags the cell as processed.
func (c *Cell) MarkClosed() { c.state = Closed }

// MarkPath tags the cell as part of a reconstructed path.
func (c *Cell) MarkPath() { c.state = Path }

// Reset returns the cell to Empty.
func (c *Cell) Reset() { c.state = Empty }

func (c *Cell) IsEmpty() bool   { return c.state == Empty }
func (c *Cell) IsOpen() bool    { return c.state == Open }
func (c *Cell) IsClosed() bool  { return c.state == Closed }
func (c *Cell) IsBarrier() bool { return c.state == Barrier }
func (c *Cell) IsStart() bool   { return c.state == Start }
func (c *Cell) IsEnd() bool     { return c.state == End }
func (c *Cell) IsPath() bool    { return c.state == Path }

// Neighbors returns the cached step neighbors, in their shuffled order.
// The slice reflects the barrier layout at the last refresh.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// WallNeighbors returns the cached wall-jump neighbors.
func (c *Cell) WallNeighbors() []WallNeighbor { return c.walls }
