// Package pathviz is the core of a grid pathfinding visualizer: a square
// board of cells, three interruptible searches and a maze carver, all
// reporting progress after every step so a front end can animate them.
//
// 🚀 What is inside?
//
//	• Board: cells with visual states, seeded neighbor resolution, pointer translation
//	• Searches: A* (Manhattan), BFS, DFS with path reconstruction
//	• Mazes: randomized depth-first carving of the checkerboard layout
//	• Driving: click/key rules, run history and headless frame output
//
// ✨ Why pathviz?
//
//   - Observable: a Notifier is called once per iteration, a Canceller polled once
//   - Reproducible: one seed fixes every neighbor order, hence every DFS path and maze
//   - Headless: frames go to text or PNG sinks, no window required
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/        - Cell, Grid, neighbor resolver, pointer translation, components
//	observe/     - Notifier / Canceller contracts and the per-iteration checkpoint
//	search/      - AStar, BFS, DFS, Reconstruct, Run
//	maze/        - Generate, Kruskal, IsPerfect
//	session/     - click and key driver with run history and logging
//	render/      - text and PNG (fogleman/gg) frame sinks
//	config/      - .env + PATHVIZ_* environment configuration
//	cmd/pathviz/ - headless command-line runner
//
// Quick ASCII example (5×5, S start, E end, p path, # barrier):
//
//	S p p p .
//	# # # p .
//	. . . p .
//	. # # p #
//	. . . p E
//
// Try it:
//
//	go run ./cmd/pathviz -rows 21 -width 420 -algo bfs
package pathviz
