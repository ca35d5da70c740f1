// Package search runs visual traversals over a grid.Grid: A*, breadth-first
// search and depth-first search, plus the shared path reconstruction.
//
// What
//
//   - Each run mutates cell states in place so a renderer can animate it:
//     discovered cells become Open, processed cells Closed, and on success the
//     reconstructed path becomes Path. Start and End keep their tags.
//   - The Notifier is called once per processed cell and once per revealed
//     path cell; the run does not continue until it returns.
//   - Cancellation (context or Canceller) is checked once per iteration. A
//     cancelled run returns its partial Result and an error wrapping
//     observe.ErrCancelled.
//
// Preconditions
//
//	Neighbor caches must be fresh: call grid.RefreshNeighbors after the last
//	barrier edit and before the run. Runs read Cell.Neighbors() as is and never
//	refresh them.
//
// Guarantees
//
//   - A*: unit edge cost, Manhattan heuristic (admissible and consistent on a
//     4-connected grid), ties on f broken by insertion order. Shortest path.
//   - BFS: shortest path. A cell may be queued by several predecessors; the
//     first dequeue wins and fixes its predecessor.
//   - DFS: some path, not necessarily shortest. Exploration order follows the
//     shuffled neighbor caches, so it varies with the grid seed.
//
// Complexity (N² cells)
//
//   - A*:      O(N² log N²) time, O(N²) memory.
//   - BFS/DFS: O(N²) time and memory (each cell queued at most 4 times).
//
// Errors
//
//   - ErrNilGrid          if the grid pointer is nil.
//   - ErrMissingEndpoint  if start or end is nil.
//   - ErrForeignCell      if start or end belongs to a different grid.
//   - observe.ErrCancelled (wrapped) on cancellation.
//
// Usage
//
//	g.RefreshNeighbors()
//	res, err := search.AStar(g, start, end,
//	    search.WithNotifier(observe.NotifyFunc(redraw)),
//	    search.WithCanceller(quit),
//	)
package search
