package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/validator"
)

func solveCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestSolveClassicBoard(t *testing.T) {
	s := NewDeduceSolver()
	res, st, err := s.Solve(solveCtx(t), &sample)
	require.NoError(t, err)
	require.True(t, res.Solved)
	assert.Equal(t, sampleSolved, res.Board)
	assert.Empty(t, res.Reason)
	assert.LessOrEqual(t, st.Guesses, DefaultGuessLimit)
}

func TestSolveSeventeenGivens(t *testing.T) {
	s := NewDeduceSolver()
	res, st, err := s.Solve(solveCtx(t), &seventeen)
	require.NoError(t, err)
	require.True(t, res.Solved, "reason: %s", res.Reason)
	assert.Equal(t, seventeenSolved, res.Board)
	assert.Less(t, st.Guesses, DefaultGuessLimit)

	ok, conf, err := validator.New().Validate(context.Background(), &res.Board)
	require.NoError(t, err)
	assert.True(t, ok, "conflicts: %v", conf)
}

func TestSolveCompleteBoardNeedsNoGuess(t *testing.T) {
	s := NewDeduceSolver()
	res, st, err := s.Solve(solveCtx(t), &sampleSolved)
	require.NoError(t, err)
	require.True(t, res.Solved)
	assert.Equal(t, sampleSolved, res.Board)
	assert.Zero(t, st.Guesses)
	assert.Zero(t, st.Nodes)
}

func TestSolveEmptyBoardCountsSearchNodes(t *testing.T) {
	// An empty board stalls deduction right away, so the solve must
	// open at least one choice point.
	s := NewDeduceSolver()
	var empty domain.Board
	res, st, err := s.Solve(solveCtx(t), &empty)
	require.NoError(t, err)
	require.True(t, res.Solved)
	assert.True(t, res.Board.Filled())
	assert.Positive(t, st.Guesses)
	assert.Positive(t, st.Nodes)
	assert.LessOrEqual(t, st.Nodes, st.Guesses)

	ok, conf, err := validator.New().Validate(context.Background(), &res.Board)
	require.NoError(t, err)
	assert.True(t, ok, "conflicts: %v", conf)
}

func TestSolveIsDeterministic(t *testing.T) {
	s := NewDeduceSolver()
	first, st1, err := s.Solve(solveCtx(t), &seventeen)
	require.NoError(t, err)
	second, st2, err := s.Solve(solveCtx(t), &seventeen)
	require.NoError(t, err)

	assert.Equal(t, first.Solved, second.Solved)
	assert.Equal(t, first.Board, second.Board)
	assert.Equal(t, st1.Guesses, st2.Guesses)
	assert.Equal(t, st1.Passes, st2.Passes)
}

func TestSolveDuplicateGivensFails(t *testing.T) {
	s := NewDeduceSolver()
	res, st, err := s.Solve(solveCtx(t), &duplicateRow)
	require.NoError(t, err)
	assert.False(t, res.Solved)
	assert.Equal(t, domain.ReasonNoSolution, res.Reason)
	assert.Zero(t, st.Guesses)
}

func TestSolveUnsolvableBoardFails(t *testing.T) {
	s := NewDeduceSolver()
	res, st, err := s.Solve(solveCtx(t), &noSolution)
	require.NoError(t, err)
	assert.False(t, res.Solved)
	assert.Equal(t, domain.ReasonNoSolution, res.Reason)
	assert.Zero(t, st.Guesses)
}

func TestSolveGuessLimitExceeded(t *testing.T) {
	// An empty board stalls immediately and cannot be finished with a
	// single guess, so a budget of one is guaranteed to run out.
	s := NewDeduceSolver(WithGuessLimit(1))
	var empty domain.Board
	res, st, err := s.Solve(solveCtx(t), &empty)
	require.NoError(t, err)
	assert.False(t, res.Solved)
	assert.Equal(t, domain.ReasonGuessLimit, res.Reason)
	assert.Equal(t, 2, st.Guesses)
	assert.False(t, res.Board.Filled())
}

func TestSolveRejectsMalformedBoard(t *testing.T) {
	s := NewDeduceSolver()
	var b domain.Board
	b.Values[0][0] = 10
	_, _, err := s.Solve(solveCtx(t), &b)
	require.ErrorIs(t, err, ErrMalformedBoard)
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	in := sample
	s := NewDeduceSolver()
	_, _, err := s.Solve(solveCtx(t), &in)
	require.NoError(t, err)
	assert.Equal(t, sample, in)
}

func TestSolveHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewDeduceSolver()
	_, _, err := s.Solve(ctx, &seventeen)
	require.ErrorIs(t, err, context.Canceled)
}
