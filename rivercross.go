package rivercross

import (
	"github.com/katalvlaran/rivercross/bfs"
	"github.com/katalvlaran/rivercross/puzzle"
)

// Solve returns the shortest sequence of move descriptions for the classic
// puzzle, or nil and false if none exists.
func Solve() ([]string, bool) {
	moves, ok, err := SolvePuzzle(puzzle.Classic())
	if err != nil {
		return nil, false
	}
	return moves, ok
}

// SolvePuzzle is Solve for an arbitrary puzzle variant. An exhausted search
// returns nil, false and a nil error; err is reserved for a nil puzzle or
// an aborted search.
func SolvePuzzle(p *puzzle.Puzzle, opts ...bfs.Option) ([]string, bool, error) {
	res, err := bfs.Solve(p, opts...)
	if err != nil {
		return nil, false, err
	}
	if !res.Found {
		return nil, false, nil
	}
	return res.Descriptions(), true, nil
}
