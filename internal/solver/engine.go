package solver

import (
	"errors"

	"svw.info/sudoku-solve/internal/domain"
)

// ErrMalformedBoard is returned when an incoming grid holds a digit
// outside 0-9. Duplicate digits are not malformed input; they surface
// as a contradiction on the first deduction pass.
var ErrMalformedBoard = errors.New("malformed board: digit out of range")

type deductionResult int

const (
	deduceStalled deductionResult = iota
	deduceSolved
	deduceContradiction
)

// engine is the working state of one solve: the value grid plus the
// derived candidate sets and per-unit used-digit masks. It contains only
// arrays and scalars, so a plain struct copy is a deep snapshot.
type engine struct {
	values  [9][9]uint8
	cand    [9][9]domain.CandidateSet
	rowUsed [9]domain.CandidateSet
	colUsed [9]domain.CandidateSet
	boxUsed [9]domain.CandidateSet
	open    int
	// broken marks a board whose givens already repeat within a unit.
	broken bool
}

func boxOf(r, c int) int { return (r/3)*3 + c/3 }

func newEngine(b *domain.Board) (*engine, error) {
	e := &engine{open: 81}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b.Values[r][c]
			if v > 9 {
				return nil, ErrMalformedBoard
			}
			if v == 0 {
				continue
			}
			box := boxOf(r, c)
			if e.rowUsed[r].Has(v) || e.colUsed[c].Has(v) || e.boxUsed[box].Has(v) {
				e.broken = true
			}
			e.values[r][c] = v
			e.rowUsed[r] = e.rowUsed[r].Add(v)
			e.colUsed[c] = e.colUsed[c].Add(v)
			e.boxUsed[box] = e.boxUsed[box].Add(v)
			e.open--
		}
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if e.values[r][c] == 0 {
				used := e.rowUsed[r] | e.colUsed[c] | e.boxUsed[boxOf(r, c)]
				e.cand[r][c] = domain.FullCandidates &^ used
			}
		}
	}
	return e, nil
}

// fix places v at (r,c) and removes it from the candidate sets of every
// peer in the same row, column, and box.
func (e *engine) fix(r, c int, v uint8) {
	e.values[r][c] = v
	e.cand[r][c] = 0
	e.rowUsed[r] = e.rowUsed[r].Add(v)
	e.colUsed[c] = e.colUsed[c].Add(v)
	box := boxOf(r, c)
	e.boxUsed[box] = e.boxUsed[box].Add(v)
	e.open--

	for i := 0; i < 9; i++ {
		e.cand[r][i] = e.cand[r][i].Remove(v)
		e.cand[i][c] = e.cand[i][c].Remove(v)
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			e.cand[br+dr][bc+dc] = e.cand[br+dr][bc+dc].Remove(v)
		}
	}
}

// unitCell maps unit u (0-8 rows, 9-17 columns, 18-26 boxes) and member
// index i to a board coordinate.
func unitCell(u, i int) (r, c int) {
	switch {
	case u < 9:
		return u, i
	case u < 18:
		return i, u - 9
	default:
		b := u - 18
		return (b/3)*3 + i/3, (b%3)*3 + i%3
	}
}

// deduce runs full passes of naked singles and unit elimination until a
// pass changes nothing, the board completes, or a contradiction appears.
// It reports the outcome and the number of passes run.
func (e *engine) deduce() (deductionResult, int) {
	if e.broken {
		return deduceContradiction, 0
	}
	passes := 0
	for {
		passes++
		changed := false

		// Naked singles: any open cell down to one candidate is fixed.
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if e.values[r][c] != 0 {
					continue
				}
				switch e.cand[r][c].Count() {
				case 0:
					return deduceContradiction, passes
				case 1:
					e.fix(r, c, e.cand[r][c].Sole())
					changed = true
				}
			}
		}

		// Unit elimination: a digit with exactly one home in a unit goes
		// there; a digit with no home at all is a contradiction.
		for u := 0; u < 27; u++ {
			for v := uint8(1); v <= 9; v++ {
				placed := false
				spots := 0
				lastR, lastC := -1, -1
				for i := 0; i < 9; i++ {
					r, c := unitCell(u, i)
					if e.values[r][c] == v {
						placed = true
						break
					}
					if e.values[r][c] == 0 && e.cand[r][c].Has(v) {
						spots++
						lastR, lastC = r, c
					}
				}
				if placed {
					continue
				}
				if spots == 0 {
					return deduceContradiction, passes
				}
				if spots == 1 {
					e.fix(lastR, lastC, v)
					changed = true
				}
			}
		}

		if !changed {
			break
		}
	}
	if e.open == 0 {
		return deduceSolved, passes
	}
	return deduceStalled, passes
}

// pickOpenCell returns the open cell with the fewest candidates, ties
// broken by row-major order. Callers only invoke it on a stalled board,
// so an open cell with at least two candidates always exists.
func (e *engine) pickOpenCell() (int, int) {
	bestR, bestC, bestN := -1, -1, 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if e.values[r][c] != 0 {
				continue
			}
			if n := e.cand[r][c].Count(); n < bestN {
				bestR, bestC, bestN = r, c, n
			}
		}
	}
	return bestR, bestC
}

func (e *engine) board() domain.Board {
	return domain.Board{Values: e.values}
}
