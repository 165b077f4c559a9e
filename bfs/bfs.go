// Package bfs provides breadth-first search over puzzle states,
// returning a shortest crossing sequence or reporting that none exists.
//
// BFS explores states in non-decreasing path length from the start,
// with optional hooks, depth limiting, and move filtering.
package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/rivercross/puzzle"
)

// queueItem pairs a state with the path that produced it.
type queueItem struct {
	state puzzle.State
	path  []Step
}

// depth is the number of moves taken to reach the item.
func (it queueItem) depth() int { return len(it.path) }

// walker encapsulates mutable BFS state.
type walker struct {
	puzzle  *puzzle.Puzzle
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[puzzle.Key]bool
	res     *BFSResult
}

// Solve runs breadth-first search from p's start state, applying any
// number of functional Options.
// Returns ErrPuzzleNil for a nil puzzle, ErrOptionViolation for bad options,
// the context error on cancellation, or any user-supplied hook error.
// An exhausted search is not an error: the result has Found == false.
func Solve(p *puzzle.Puzzle, opts ...Option) (*BFSResult, error) {
	if p == nil {
		return nil, ErrPuzzleNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// the whole space is 2^(NumItems+1) states
	const n = 1 << (puzzle.NumItems + 1)
	w := &walker{
		puzzle:  p,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[puzzle.Key]bool, n),
		res: &BFSResult{
			Order: make([]puzzle.Key, 0, n),
			Depth: make(map[puzzle.Key]int, n),
		},
	}

	// Seed queue with the start state (empty path)
	w.queue = append(w.queue, queueItem{state: p.Start()})
	w.opts.OnEnqueue(p.Start(), 0)

	return w.res, w.loop()
}

// loop processes the queue until a goal is found, the queue empties,
// an error occurs, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		key := item.state.Key()
		if w.visited[key] {
			continue
		}
		if err := w.visit(key, item); err != nil {
			return err
		}
		if w.puzzle.IsComplete(item.state) {
			w.res.Found = true
			w.res.Steps = item.path
			return nil
		}
		w.enqueueSuccessors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.state, item.depth())
	return item
}

// visit marks the key visited, records it in Order and Depth, and calls OnVisit.
func (w *walker) visit(key puzzle.Key, item queueItem) error {
	w.visited[key] = true
	w.res.Order = append(w.res.Order, key)
	w.res.Depth[key] = item.depth()
	if err := w.opts.OnVisit(item.state, item.depth()); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", key, err)
	}
	return nil
}

// enqueueSuccessors applies every allowed move and enqueues each valid
// successor with a copy of the extended path. Unsafe successors are
// counted in Pruned and never enqueued.
func (w *walker) enqueueSuccessors(item queueItem) {
	nextDepth := item.depth() + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, m := range puzzle.PossibleMoves(item.state) {
		if !w.opts.FilterMove(item.state, m) {
			continue
		}
		next := item.state.Apply(m)
		if !w.puzzle.IsValid(next) {
			w.res.Pruned++
			continue
		}
		path := append(slices.Clip(item.path), Step{Move: m, State: next})
		w.opts.OnEnqueue(next, nextDepth)
		w.queue = append(w.queue, queueItem{state: next, path: path})
	}
}
