package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/ports"
)

// DefaultGuessLimit bounds the total guesses spent on one board before
// the solve is abandoned.
const DefaultGuessLimit = 10000

// DeduceSolver solves by constraint propagation, falling back to
// guessing when deduction stalls. The search is depth-first over an
// explicit stack of choice points rather than call-stack recursion, so
// depth is bounded by memory and the guess budget can be checked
// between any two guesses.
//
// Reported Stats: Guesses counts every candidate applied, retries during
// backtracking included; Nodes counts choice points opened; Passes sums
// deduction passes across the whole search.
type DeduceSolver struct {
	guessLimit int
}

type DeduceOption func(*DeduceSolver)

// WithGuessLimit overrides the default guess budget. Values below one
// are ignored.
func WithGuessLimit(n int) DeduceOption {
	return func(s *DeduceSolver) {
		if n > 0 {
			s.guessLimit = n
		}
	}
}

func NewDeduceSolver(opts ...DeduceOption) *DeduceSolver {
	s := &DeduceSolver{guessLimit: DefaultGuessLimit}
	for _, o := range opts {
		o(s)
	}
	return s
}

// choicePoint records the engine state before a guess at (row,col) and
// the candidate digits not yet tried there, in ascending order.
type choicePoint struct {
	saved      engine
	row, col   int
	candidates []uint8
}

func (cp *choicePoint) next() uint8 {
	v := cp.candidates[0]
	cp.candidates = cp.candidates[1:]
	return v
}

func (s *DeduceSolver) Solve(ctx context.Context, b *domain.Board) (domain.Result, ports.Stats, error) {
	start := time.Now()
	e, err := newEngine(b)
	if err != nil {
		return domain.Result{Board: *b}, ports.Stats{}, err
	}

	var stack []*choicePoint
	st := ports.Stats{}
	fail := func(reason string) (domain.Result, ports.Stats, error) {
		st.Duration = time.Since(start)
		return domain.Result{Board: e.board(), Reason: reason}, st, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			st.Duration = time.Since(start)
			return domain.Result{Board: e.board()}, st, err
		}

		res, passes := e.deduce()
		st.Passes += passes

		switch res {
		case deduceSolved:
			st.Duration = time.Since(start)
			return domain.Result{Board: e.board(), Solved: true}, st, nil

		case deduceStalled:
			r, c := e.pickOpenCell()
			cp := &choicePoint{saved: *e, row: r, col: c, candidates: e.cand[r][c].Digits()}
			stack = append(stack, cp)
			st.Nodes++
			e.fix(r, c, cp.next())
			st.Guesses++
			if st.Guesses > s.guessLimit {
				return fail(domain.ReasonGuessLimit)
			}

		case deduceContradiction:
			for len(stack) > 0 && len(stack[len(stack)-1].candidates) == 0 {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return fail(domain.ReasonNoSolution)
			}
			cp := stack[len(stack)-1]
			*e = cp.saved
			e.fix(cp.row, cp.col, cp.next())
			st.Guesses++
			if st.Guesses > s.guessLimit {
				return fail(domain.ReasonGuessLimit)
			}
		}
	}
}
