// Package puzzle models the wolf, goat and cabbage river crossing as a
// handful of small value types.
//
// What
//
//   - Bank:   one side of the river (Near is printed "left", Far is "right").
//   - Item:   Wolf, Goat or Cabbage, enumerated in that canonical order.
//   - State:  the farmer's bank plus every item's bank. A plain value; copying
//     it never aliases, and Apply always returns a fresh State.
//   - Move:   the farmer crossing alone or escorting one item.
//   - Rules:  the constant edibility table (who eats whom when unsupervised).
//   - Puzzle: Rules bound to the fixed start state.
//
// Operations
//
//   - Puzzle.IsValid(s):  no unsupervised pair on the far-from-farmer bank can eat.
//   - IsComplete(s):      every item is on Far.
//   - PossibleMoves(s):   alone first, then each item on the farmer's bank in
//     Items() order.
//   - State.Apply(m):     pure transition.
//   - State.Key():        canonical comparable encoding for visited sets.
//   - Describe(m, bank):  "Move farmer[ with <item>] to <bank> bank".
//
// Variants
//
// New accepts functional options that extend or replace the edibility table:
//
//	p, err := puzzle.New(puzzle.WithEdible(puzzle.Wolf, puzzle.Cabbage))
//	if err != nil {
//	    // ErrOptionViolation
//	}
//
// The extra pair above makes every crossing unsafe, which is handy for
// exercising the "no solution" path of a solver.
package puzzle
