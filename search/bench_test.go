package search_test

import (
	"testing"

	"github.com/katalvlaran/pathviz/search"
)

// BenchmarkAStar measures corner-to-corner A* on an open 256×256 grid.
// Complexity: O(N² log N²)
func BenchmarkAStar(b *testing.B) {
	benchmarkRun(b, search.AlgoAStar)
}

// BenchmarkBFS measures corner-to-corner BFS on an open 256×256 grid.
// Complexity: O(N²)
func BenchmarkBFS(b *testing.B) {
	benchmarkRun(b, search.AlgoBFS)
}

func benchmarkRun(b *testing.B, algo search.Algorithm) {
	const n = 256
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g, start, end := setup(b, n, 42, [2]int{0, 0}, [2]int{n - 1, n - 1})
		b.StartTimer()
		if _, err := search.Run(algo, g, start, end); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}
