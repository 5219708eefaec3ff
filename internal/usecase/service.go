package usecase

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/ports"
)

// Service orchestrates one run: read puzzles, solve each board
// independently, write the results in input order.
type Service struct {
	Solver ports.Solver
	Reader ports.PuzzleReader
	Writer ports.ResultWriter
	// Workers bounds concurrent solves; zero means one per CPU.
	Workers int
}

func NewService(s ports.Solver, r ports.PuzzleReader, w ports.ResultWriter) *Service {
	return &Service{Solver: s, Reader: r, Writer: w}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// BoardReport pairs one puzzle with its solve outcome.
type BoardReport struct {
	Title  string
	Result domain.Result
	Stats  ports.Stats
	Err    error
}

// SolveAll solves every puzzle, fanning out across a bounded worker
// pool. Boards share no mutable state, so each worker owns its solve
// outright; results land in a slot per board.
func (u *Service) SolveAll(ctx context.Context, puzzles []domain.Puzzle) ([]BoardReport, error) {
	if u.Solver == nil {
		return nil, errNotConfigured
	}
	workers := u.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	reports := make([]BoardReport, len(puzzles))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range puzzles {
		if err := ctx.Err(); err != nil {
			reports[i] = BoardReport{Title: puzzles[i].Title, Result: domain.Result{Board: puzzles[i].Board}, Err: err}
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			res, st, err := u.Solver.Solve(ctx, &puzzles[i].Board)
			reports[i] = BoardReport{Title: puzzles[i].Title, Result: res, Stats: st, Err: err}
		}(i)
	}
	wg.Wait()

	var errs []error
	for i := range reports {
		if reports[i].Err != nil {
			errs = append(errs, reports[i].Err)
		}
	}
	return reports, errors.Join(errs...)
}

// Run reads puzzles from inputPath, solves them, and writes the
// aggregated results to outputPath. The reports are returned so the
// caller can log per-board outcomes; a solve error on one board does
// not stop the others or suppress the output file.
func (u *Service) Run(ctx context.Context, inputPath, outputPath string) ([]BoardReport, error) {
	if u.Reader == nil || u.Writer == nil {
		return nil, errNotConfigured
	}
	puzzles, err := u.Reader.Read(ctx, inputPath)
	if err != nil {
		return nil, err
	}
	reports, solveErr := u.SolveAll(ctx, puzzles)
	results := make([]domain.Result, len(reports))
	for i := range reports {
		results[i] = reports[i].Result
	}
	if err := u.Writer.Write(ctx, outputPath, puzzles, results); err != nil {
		return reports, errors.Join(solveErr, err)
	}
	return reports, solveErr
}
