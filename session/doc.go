// Package session drives a pathfinding board the way the interactive
// visualizer does, without a window: pointer clicks paint the board, keys
// start maze generation or a search, and every progress notification is
// forwarded to a Renderer as a frame.
//
// Pointer rules (PrimaryAt, a left click):
//
//	barrier cell           → ignored
//	no start, cell ≠ end   → cell becomes Start
//	no end, cell ≠ start   → cell becomes End
//	otherwise              → cell becomes Barrier (unless it is Start or End)
//
// SecondaryAt (a right click) resets the cell and forgets it as Start/End.
//
// Keys (Press):
//
//	KeyMaze, KeyKruskal   only with neither Start nor End placed; depth-first
//	                      or Kruskal carving of the checkerboard
//	KeyBFS, KeyDFS, KeyAStar   only with both placed; neighbor caches are
//	                           refreshed and old search marks cleared first
//	KeyClear  forgets Start/End and rebuilds the checkerboard board
//
// A failed precondition returns ErrPreconditions and leaves the board as is.
// Every completed or cancelled run is logged and kept in History.
//
// A Session is not safe for concurrent use.
package session
