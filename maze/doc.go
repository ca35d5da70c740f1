// Package maze carves perfect mazes into a grid.Grid. Generate runs a
// randomized depth-first search over wall-jump neighbors; Kruskal joins rooms
// through a shuffled list of walls and a disjoint-set.
//
// What (Generate):
//
//   - Start from a grid where the cells to be joined are open and everything
//     between them is Barrier (grid.ApplyCheckerboard gives exactly that).
//   - A stack holds (wall, target) pairs, seeded with (nil, origin).
//   - Popping an unvisited target marks it visited, resets its wall to Empty
//     (knocking it down) and pushes every wall-jump neighbor whose target is
//     still unvisited. Neighbor order comes from the grid's seeded RNG.
//   - The Notifier is called after every pop, visited or not.
//
// Result:
//
//	Every open cell reachable from the origin by wall jumps ends up joined,
//	and the open cells form a tree: exactly one simple path between any two
//	of them. IsPerfect checks that property.
//
// Complexity: O(N²) time and memory.
//
// Errors:
//
//   - ErrNilGrid:           nil grid.
//   - ErrOriginOutOfBounds: origin outside the grid (e.g. a 1×1 grid with the
//     default origin (1,1)).
//   - observe.ErrCancelled (wrapped) on cancellation.
package maze
