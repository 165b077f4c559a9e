// Package rivercross solves the wolf, goat and cabbage river-crossing puzzle
// with a breadth-first search over its sixteen possible states.
//
// 🚣 The puzzle
//
//	A farmer must ferry a wolf, a goat and a cabbage across a river. The boat
//	holds the farmer and at most one passenger. Left unsupervised, the wolf
//	eats the goat and the goat eats the cabbage.
//
// Under the hood, everything is organized under two subpackages:
//
//	puzzle/ — Bank, Item, State, Move and Rules value types, the safety and
//	          goal predicates, move enumeration and canonical state keys
//	bfs/    — the breadth-first driver with hooks, depth limits and filters
//
// Quick start:
//
//	moves, ok := rivercross.Solve()
//	if !ok {
//	    fmt.Println("No solution found!")
//	}
//	for i, m := range moves {
//	    fmt.Printf("%d. %s\n", i+1, m)
//	}
//
// The command in cmd/rivercross wraps the same call for the terminal.
package rivercross
