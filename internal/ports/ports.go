package ports

import (
	"context"
	"time"

	"svw.info/sudoku-solve/internal/domain"
)

// Stats captures performance characteristics of one solve.
type Stats struct {
	Guesses  int
	Passes   int
	Nodes    int
	Duration time.Duration
}

// Solver runs one board to a Result. The error return is reserved for
// structurally invalid boards (digits outside 0-9); failing to solve a
// well-formed board is reported through Result, never as an error.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (domain.Result, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// PuzzleReader parses puzzles from an input file.
type PuzzleReader interface {
	Read(ctx context.Context, path string) ([]domain.Puzzle, error)
}

// ResultWriter persists one result per puzzle, in puzzle order.
type ResultWriter interface {
	Write(ctx context.Context, path string, puzzles []domain.Puzzle, results []domain.Result) error
}
