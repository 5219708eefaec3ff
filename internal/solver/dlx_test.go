package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-solve/internal/domain"
)

func TestDLXSolveClassicBoard(t *testing.T) {
	s := NewDLXSolver()
	res, st, err := s.Solve(solveCtx(t), &sample)
	require.NoError(t, err)
	require.True(t, res.Solved)
	assert.Equal(t, sampleSolved, res.Board)
	assert.Positive(t, st.Nodes)
}

func TestDLXSolveSeventeenGivens(t *testing.T) {
	s := NewDLXSolver()
	res, _, err := s.Solve(solveCtx(t), &seventeen)
	require.NoError(t, err)
	require.True(t, res.Solved)
	assert.Equal(t, seventeenSolved, res.Board)
}

func TestDLXDuplicateGivensFail(t *testing.T) {
	s := NewDLXSolver()
	res, _, err := s.Solve(solveCtx(t), &duplicateRow)
	require.NoError(t, err)
	assert.False(t, res.Solved)
	assert.Equal(t, domain.ReasonNoSolution, res.Reason)
}

func TestDLXUnsolvableBoardFails(t *testing.T) {
	s := NewDLXSolver()
	res, _, err := s.Solve(solveCtx(t), &noSolution)
	require.NoError(t, err)
	assert.False(t, res.Solved)
	assert.Equal(t, domain.ReasonNoSolution, res.Reason)
}
