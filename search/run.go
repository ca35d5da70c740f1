package search

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// Run dispatches to AStar, BFS or DFS.
// Returns ErrUnknownAlgorithm for values outside the enum.
func Run(algo Algorithm, g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error) {
	switch algo {
	case AlgoAStar:
		return AStar(g, start, end, opts...)
	case AlgoBFS:
		return BFS(g, start, end, opts...)
	case AlgoDFS:
		return DFS(g, start, end, opts...)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
}
