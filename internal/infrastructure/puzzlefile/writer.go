package puzzlefile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"svw.info/sudoku-solve/internal/domain"
)

// Writer produces the aggregated results file: per puzzle a header line
// with the outcome, then the final grid (complete or partial).
type Writer struct{}

func NewWriter() *Writer { return &Writer{} }

// DefaultOutputPath mirrors the conventional naming: the input path
// with its extension replaced by "_solutions.txt".
func DefaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_solutions.txt"
}

func (w *Writer) Write(ctx context.Context, path string, puzzles []domain.Puzzle, results []domain.Result) error {
	if len(puzzles) != len(results) {
		return fmt.Errorf("puzzle/result count mismatch: %d vs %d", len(puzzles), len(results))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if err := w.WriteTo(ctx, bw, puzzles, results); err != nil {
		return err
	}
	return bw.Flush()
}

func (w *Writer) WriteTo(ctx context.Context, out io.Writer, puzzles []domain.Puzzle, results []domain.Result) error {
	for i := range puzzles {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeOne(out, &puzzles[i], &results[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeOne(out io.Writer, p *domain.Puzzle, res *domain.Result) error {
	header := p.Title + ": SOLVED\n"
	if !res.Solved {
		header = fmt.Sprintf("%s: COULD NOT BE SOLVED (%s)\n", p.Title, res.Reason)
	}
	if _, err := io.WriteString(out, header); err != nil {
		return err
	}
	for r := 0; r < 9; r++ {
		var row [17]byte
		for c := 0; c < 9; c++ {
			row[c*2] = '0' + res.Board.Values[r][c]
			if c < 8 {
				row[c*2+1] = ' '
			}
		}
		if _, err := fmt.Fprintf(out, "%s\n", row[:]); err != nil {
			return err
		}
	}
	return nil
}
