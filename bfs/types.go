// Package bfs provides tunable options and error definitions
// for breadth-first search over puzzle states.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/rivercross/puzzle"
)

// Sentinel errors for BFS execution.
var (
	// ErrPuzzleNil is returned if a nil puzzle pointer is passed.
	ErrPuzzleNil = errors.New("bfs: puzzle is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a valid successor is enqueued.
	// Receives the state and its depth (path length) from the start.
	OnEnqueue func(s puzzle.State, depth int)

	// OnDequeue is called for every popped state, including duplicates
	// that are about to be skipped.
	OnDequeue func(s puzzle.State, depth int)

	// OnVisit is called once per expanded state, after it is marked visited.
	// If it returns an error, BFS aborts and propagates that error.
	OnVisit func(s puzzle.State, depth int) error

	// MaxDepth, if > 0, stops exploring paths longer than this.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterMove can skip candidate moves by returning false.
	FilterMove func(s puzzle.State, m puzzle.Move) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all moves allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:        context.Background(),
		OnEnqueue:  func(puzzle.State, int) {},
		OnDequeue:  func(puzzle.State, int) {},
		OnVisit:    func(puzzle.State, int) error { return nil },
		MaxDepth:   0,
		FilterMove: func(puzzle.State, puzzle.Move) bool { return true },
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(s puzzle.State, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(s puzzle.State, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(s puzzle.State, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the length of explored paths.
//
//	d > 0: no path longer than d moves is enqueued
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterMove skips moves when fn returns false.
func WithFilterMove(fn func(s puzzle.State, m puzzle.Move) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterMove = fn
		}
	}
}

// Step is one crossing on a solution path: the move made and the
// state it produced.
type Step struct {
	Move  puzzle.Move
	State puzzle.State
}

// String renders the step as "Move farmer with goat to right bank".
func (s Step) String() string {
	return puzzle.Describe(s.Move, s.State.Farmer)
}

// BFSResult holds the outcome of a search:
//   - Found: whether a complete state was reached.
//   - Steps: the shortest path to it (nil when Found is false).
//   - Order: canonical keys of expanded states, in expansion order.
//   - Depth: map from expanded key to its distance (in moves) from the start.
//   - Pruned: number of unsafe successors discarded.
type BFSResult struct {
	Found  bool
	Steps  []Step
	Order  []puzzle.Key
	Depth  map[puzzle.Key]int
	Pruned int
}

// Descriptions returns the human-readable move list, one entry per step.
func (r *BFSResult) Descriptions() []string {
	if !r.Found {
		return nil
	}
	out := make([]string, len(r.Steps))
	for i, st := range r.Steps {
		out[i] = st.String()
	}
	return out
}

// Moves returns the bare moves of the solution path.
func (r *BFSResult) Moves() []puzzle.Move {
	if !r.Found {
		return nil
	}
	out := make([]puzzle.Move, len(r.Steps))
	for i, st := range r.Steps {
		out[i] = st.Move
	}
	return out
}
