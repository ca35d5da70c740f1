// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ApplyCheckerboard
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ApplyCheckerboard shows the demo barrier layout used as the
// starting point for maze carving: only odd/odd cells stay open.
func ExampleGrid_ApplyCheckerboard() {
	g, _ := grid.NewGrid(7)
	g.ApplyCheckerboard()
	fmt.Print(g)
	fmt.Println("open cells:", g.Count(grid.Empty))

	// Output:
	// #######
	// #.#.#.#
	// #######
	// #.#.#.#
	// #######
	// #.#.#.#
	// #######
	// open cells: 9
}

////////////////////////////////////////////////////////////////////////////////
// Example: PointerToCell
////////////////////////////////////////////////////////////////////////////////

// ExamplePointerToCell maps a click on a 1280px board with 64 rows.
func ExamplePointerToCell() {
	row, col, err := grid.PointerToCell(645, 101, 1280, 64)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("(%d,%d)\n", row, col)

	// Output:
	// (32,5)
}
