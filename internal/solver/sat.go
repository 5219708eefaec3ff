package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/ports"
)

// SATSolver encodes a board as CNF and hands it to the gini solver.
// One variable per (row, col, digit) triple; clauses state that every
// cell holds some digit and that no digit repeats within a unit.
type SATSolver struct{}

func NewSATSolver() *SATSolver { return &SATSolver{} }

func satLit(r, c int, v uint8) z.Lit {
	return z.Var((r*9+c)*9 + int(v)).Pos()
}

func (s *SATSolver) Solve(ctx context.Context, b *domain.Board) (domain.Result, ports.Stats, error) {
	start := time.Now()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] > 9 {
				return domain.Result{Board: *b}, ports.Stats{}, ErrMalformedBoard
			}
		}
	}

	g := gini.New()
	clauses := 0

	// every cell holds at least one digit
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for v := uint8(1); v <= 9; v++ {
				g.Add(satLit(r, c, v))
			}
			g.Add(0)
			clauses++
		}
	}

	// no digit twice in one unit
	atMostOne := func(cells [9]domain.CellCoord) {
		for v := uint8(1); v <= 9; v++ {
			for i := 0; i < 9; i++ {
				for j := i + 1; j < 9; j++ {
					g.Add(satLit(cells[i].Row, cells[i].Col, v).Not())
					g.Add(satLit(cells[j].Row, cells[j].Col, v).Not())
					g.Add(0)
					clauses++
				}
			}
		}
	}
	for u := 0; u < 27; u++ {
		var cells [9]domain.CellCoord
		for i := 0; i < 9; i++ {
			r, c := unitCell(u, i)
			cells[i] = domain.CellCoord{Row: r, Col: c}
		}
		atMostOne(cells)
	}

	// givens as unit clauses
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v != 0 {
				g.Add(satLit(r, c, v))
				g.Add(0)
				clauses++
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return domain.Result{Board: *b}, ports.Stats{Duration: time.Since(start)}, err
	}

	st := ports.Stats{Nodes: clauses}
	if g.Solve() != 1 {
		st.Duration = time.Since(start)
		return domain.Result{Board: *b, Reason: domain.ReasonNoSolution}, st, nil
	}

	var out domain.Board
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for v := uint8(1); v <= 9; v++ {
				if g.Value(satLit(r, c, v)) {
					out.Values[r][c] = v
					break
				}
			}
		}
	}
	st.Duration = time.Since(start)
	return domain.Result{Board: out, Solved: true}, st, nil
}
