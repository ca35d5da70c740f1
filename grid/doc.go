// Package grid models the square board that the search and maze packages
// operate on: cells with a closed set of visual states, the grid that owns
// them, and the neighbor resolver that decides which cells a traversal may
// step into.
//
// What:
//
//   - Grid is an N×N row-major collection of *Cell, built once by NewGrid.
//   - Each Cell carries an immutable (row, col) position and a State tag
//     (Empty, Open, Closed, Barrier, Start, End, Path).
//   - Step neighbors: up to four orthogonal, non-barrier cells one step away.
//   - Wall neighbors: up to four non-barrier cells two steps away, paired with
//     the intervening “wall” cell; only maze carving uses them.
//   - Both neighbor lists are shuffled once per computation with the grid's
//     seedable RNG, so exploration order is unbiased yet reproducible.
//
// Neighbor caches:
//
//	Caches are NOT kept in sync with barrier edits. Callers must invoke
//	RefreshNeighbors (or ComputeStepNeighbors per cell) after changing the
//	barrier layout and before running any traversal. A stale cache still lets
//	a search walk into a cell that has since become a barrier.
//
// Layout helpers:
//
//   - ApplyCheckerboard: even rows fully barrier, odd rows barrier on even
//     columns. This leaves isolated odd/odd cells, the seed layout for carving.
//   - PointerToCell: maps a pointer position in pixels to (row, col).
//   - ConnectedComponents: 4-connected regions of non-barrier cells.
//
// Complexity:
//
//   - NewGrid, Reset, ApplyCheckerboard, RefreshNeighbors: O(N²).
//   - ComputeStepNeighbors, ComputeWallNeighbors: O(1).
//   - ConnectedComponents: O(N²·4) time, O(N²) memory.
//
// Errors:
//
//   - ErrInvalidSize: non-positive dimension or pixel width too small.
//   - ErrOutOfBounds: coordinates outside [0,N).
//
// Concurrency:
//
//	A Grid and its cells are owned by a single goroutine. No locking is done.
package grid
