// Package bfs provides a breadth-first search over puzzle.State values,
// returning a shortest sequence of crossings that brings every item to the
// far bank, or reporting that no such sequence exists.
//
// What
//
//   - Explore states in non-decreasing path length (move count) from the start.
//   - Returns a BFSResult containing:
//   - Found: whether a complete state was reached
//   - Steps: the shortest path (move + resulting state per step)
//   - Order: expansion sequence of canonical keys
//   - Depth: map from expanded key → path length from start
//   - Pruned: count of unsafe successors discarded
//   - Supports functional hooks at three stages:
//   - OnEnqueue (a valid successor joins the queue)
//   - OnDequeue (every pop, duplicates included)
//   - OnVisit   (a state is expanded; may abort with an error)
//   - Allows filtering of individual moves via WithFilterMove.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Visited semantics
//
//	A state's key is checked and recorded when it is dequeued, not when it is
//	enqueued. The same state may therefore sit in the queue more than once,
//	but it is expanded (OnVisit, successors generated) at most once. Unsafe
//	successors are never enqueued and never marked visited.
//
// Determinism
//
//	puzzle.PossibleMoves lists "alone" first, then items in canonical order,
//	and the queue is strictly FIFO, so the returned path is reproducible
//	across runs, not merely some path of minimal length.
//
// No solution
//
//	An exhausted queue yields Found == false and a nil error. That outcome is
//	a normal result, not a failure.
//
// Complexity (S = reachable states, at most 2^(NumItems+1) = 16)
//
//   - Time:   O(S · NumItems)
//   - Memory: O(S · depth)   (each queued item carries its own path)
//
// Usage
//
//	res, err := bfs.Solve(puzzle.Classic())
//	if err != nil {
//	    // ErrPuzzleNil, ErrOptionViolation, context error, or hook error
//	}
//	if !res.Found {
//	    // unsolvable variant
//	}
//	for i, d := range res.Descriptions() {
//	    fmt.Printf("%d. %s\n", i+1, d)
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):        set a custom context for cancellation.
//   - WithMaxDepth(d):         never enqueue paths longer than d (>0).
//   - WithFilterMove(fn):      skip moves for which fn(state, move)==false.
//   - WithOnEnqueue(fn):       hook when a successor is enqueued.
//   - WithOnDequeue(fn):       hook on every pop.
//   - WithOnVisit(fn):         hook on expansion; returning error aborts BFS.
package bfs
