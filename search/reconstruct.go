package search

import (
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/observe"
)

// Reconstruct walks cameFrom from goal back to the cell that has no
// predecessor (the start), marking every walked predecessor as Path except
// the Start cell, and calling n once per marked cell in goal → start order.
//
// The returned slice lists the walk as goal, …, start. goal itself is not
// re-marked; callers restore its tag. A nil n is treated as a no-op.
//
// The walk is bounded by len(cameFrom)+1 steps, so a malformed map with a
// cycle terminates instead of spinning forever.
//
// Complexity: O(L) for a path of L cells.
func Reconstruct(cameFrom map[*grid.Cell]*grid.Cell, goal *grid.Cell, n observe.Notifier) []*grid.Cell {
	if goal == nil {
		return nil
	}
	if n == nil {
		n = observe.Nop
	}
	walked := []*grid.Cell{goal}
	cur := goal
	for steps := 0; steps <= len(cameFrom); steps++ {
		prev, ok := cameFrom[cur]
		if !ok || prev == nil {
			break
		}
		cur = prev
		walked = append(walked, cur)
		if cur.IsStart() {
			continue
		}
		cur.MarkPath()
		n.NotifyProgress()
	}

	return walked
}
