package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/rivercross/bfs"
	"github.com/katalvlaran/rivercross/puzzle"
)

var classicSolution = []string{
	"Move farmer with goat to right bank",
	"Move farmer to left bank",
	"Move farmer with wolf to right bank",
	"Move farmer with goat to left bank",
	"Move farmer with cabbage to right bank",
	"Move farmer to left bank",
	"Move farmer with goat to right bank",
}

// SolveSuite exercises Solve on the classic puzzle and its variants.
type SolveSuite struct {
	suite.Suite
	p *puzzle.Puzzle
}

func (s *SolveSuite) SetupTest() {
	s.p = puzzle.Classic()
}

// TestClassicSolution pins the exact shortest path produced by the
// canonical move order.
func (s *SolveSuite) TestClassicSolution() {
	res, err := bfs.Solve(s.p)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Len(s.T(), res.Steps, 7)
	require.Equal(s.T(), classicSolution, res.Descriptions())
	require.Equal(s.T(), "Move farmer with goat to right bank", res.Steps[0].String(), "goat must cross first")
}

// TestPathIsSafeAndLegal replays the path independently of the solver.
func (s *SolveSuite) TestPathIsSafeAndLegal() {
	res, err := bfs.Solve(s.p)
	require.NoError(s.T(), err)

	cur := s.p.Start()
	require.True(s.T(), s.p.IsValid(cur))
	for i, m := range res.Moves() {
		require.Contains(s.T(), puzzle.PossibleMoves(cur), m, "step %d not offered", i+1)
		cur = cur.Apply(m)
		require.True(s.T(), s.p.IsValid(cur), "step %d leaves an unsafe state %s", i+1, cur)
		require.Equal(s.T(), res.Steps[i].State, cur, "recorded state diverges at step %d", i+1)
	}
	require.True(s.T(), puzzle.IsComplete(cur))
	require.Equal(s.T(), puzzle.Far, cur.Farmer)
}

// TestNoShorterSolution shows that a depth limit below seven finds nothing,
// while exactly seven suffices.
func (s *SolveSuite) TestNoShorterSolution() {
	res, err := bfs.Solve(s.p, bfs.WithMaxDepth(6))
	require.NoError(s.T(), err)
	require.False(s.T(), res.Found)
	require.Nil(s.T(), res.Descriptions())

	res, err = bfs.Solve(s.p, bfs.WithMaxDepth(7))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), classicSolution, res.Descriptions())
}

// TestDeterministic runs the search repeatedly and expects identical output.
func (s *SolveSuite) TestDeterministic() {
	first, err := bfs.Solve(s.p)
	require.NoError(s.T(), err)
	for i := 0; i < 20; i++ {
		again, err := bfs.Solve(s.p)
		require.NoError(s.T(), err)
		require.Equal(s.T(), first.Descriptions(), again.Descriptions())
		require.Equal(s.T(), first.Order, again.Order)
	}
}

// TestNoStateExpandedTwice instruments OnVisit and checks that every
// expansion carries a fresh key.
func (s *SolveSuite) TestNoStateExpandedTwice() {
	seen := make(map[puzzle.Key]bool)
	var dequeued int
	res, err := bfs.Solve(s.p,
		bfs.WithOnDequeue(func(puzzle.State, int) { dequeued++ }),
		bfs.WithOnVisit(func(st puzzle.State, _ int) error {
			k := st.Key()
			if seen[k] {
				return errors.New("re-expanded " + k.String())
			}
			seen[k] = true
			return nil
		}),
	)
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Order, len(seen))
	require.Len(s.T(), res.Order, 10)
	require.Greater(s.T(), dequeued, len(res.Order), "duplicates should be popped and skipped")
}

// TestDepthsAreNonDecreasing checks the breadth-first layering.
func (s *SolveSuite) TestDepthsAreNonDecreasing() {
	res, err := bfs.Solve(s.p)
	require.NoError(s.T(), err)
	prev := 0
	for _, k := range res.Order {
		d := res.Depth[k]
		require.GreaterOrEqual(s.T(), d, prev)
		prev = d
	}
	require.Equal(s.T(), 0, res.Depth[puzzle.Start().Key()])
	last := res.Order[len(res.Order)-1]
	require.Equal(s.T(), 7, res.Depth[last])
	require.True(s.T(), puzzle.IsComplete(last.State()))
}

// TestEnqueueOnlyValid asserts unsafe successors never reach the queue.
func (s *SolveSuite) TestEnqueueOnlyValid() {
	res, err := bfs.Solve(s.p, bfs.WithOnEnqueue(func(st puzzle.State, _ int) {
		require.True(s.T(), s.p.IsValid(st), "enqueued unsafe state %s", st)
	}))
	require.NoError(s.T(), err)
	require.Positive(s.T(), res.Pruned)
}

// TestUnsolvableVariant adds wolf→cabbage, making every crossing unsafe.
func (s *SolveSuite) TestUnsolvableVariant() {
	p, err := puzzle.New(puzzle.WithEdible(puzzle.Wolf, puzzle.Cabbage))
	require.NoError(s.T(), err)

	res, err := bfs.Solve(p)
	require.NoError(s.T(), err, "no solution is not an error")
	require.False(s.T(), res.Found)
	require.Nil(s.T(), res.Steps)
	require.Nil(s.T(), res.Descriptions())
	require.Equal(s.T(), []puzzle.Key{puzzle.Start().Key()}, res.Order)
	require.Equal(s.T(), 4, res.Pruned, "every first crossing leaves a dangerous pair behind")
}

// TestFilterMove forbids ever carrying the goat, which makes the puzzle unsolvable.
func (s *SolveSuite) TestFilterMove() {
	res, err := bfs.Solve(s.p, bfs.WithFilterMove(func(_ puzzle.State, m puzzle.Move) bool {
		it, ok := m.Cargo()
		return !ok || it != puzzle.Goat
	}))
	require.NoError(s.T(), err)
	require.False(s.T(), res.Found)
}

// TestErrors covers nil puzzle, bad options, hook errors and cancellation.
func (s *SolveSuite) TestErrors() {
	_, err := bfs.Solve(nil)
	require.ErrorIs(s.T(), err, bfs.ErrPuzzleNil)

	_, err = bfs.Solve(s.p, bfs.WithMaxDepth(-1))
	require.ErrorIs(s.T(), err, bfs.ErrOptionViolation)

	boom := errors.New("boom")
	_, err = bfs.Solve(s.p, bfs.WithOnVisit(func(puzzle.State, int) error { return boom }))
	require.ErrorIs(s.T(), err, boom)
	require.Contains(s.T(), err.Error(), "OnVisit error")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.Solve(s.p, bfs.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestConcurrentSafety ensures concurrent searches on one puzzle do not interfere.
func (s *SolveSuite) TestConcurrentSafety() {
	const n = 8
	out := make(chan []string, n)
	for i := 0; i < n; i++ {
		go func() {
			res, err := bfs.Solve(s.p)
			if err != nil {
				out <- nil
				return
			}
			out <- res.Descriptions()
		}()
	}
	for i := 0; i < n; i++ {
		require.Equal(s.T(), classicSolution, <-out)
	}
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}
