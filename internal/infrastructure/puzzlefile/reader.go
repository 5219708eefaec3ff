package puzzlefile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"svw.info/sudoku-solve/internal/domain"
)

// Reader parses the Project Euler 96 text format: a title line such as
// "Grid 01" followed by nine rows of nine digits, 0 marking blanks.
// Blank lines between boards are tolerated; a board without a title
// line gets a generated "Board N" title.
type Reader struct{}

func NewReader() *Reader { return &Reader{} }

func (rd *Reader) Read(ctx context.Context, path string) ([]domain.Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return rd.ReadFrom(ctx, f)
}

func isDigitRow(line string) bool {
	if len(line) != 9 {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] < '0' || line[i] > '9' {
			return false
		}
	}
	return true
}

func (rd *Reader) ReadFrom(ctx context.Context, r io.Reader) ([]domain.Puzzle, error) {
	var (
		puzzles []domain.Puzzle
		cur     domain.Board
		title   string
		rows    int
		lineNo  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if rows > 0 {
				return nil, fmt.Errorf("line %d: board %q is missing rows", lineNo, title)
			}
			continue
		}
		if isDigitRow(line) {
			if rows == 0 && title == "" {
				title = fmt.Sprintf("Board %d", len(puzzles))
			}
			for c := 0; c < 9; c++ {
				cur.Values[rows][c] = line[c] - '0'
			}
			rows++
			if rows == 9 {
				puzzles = append(puzzles, domain.Puzzle{Title: title, Board: cur})
				cur = domain.Board{}
				title = ""
				rows = 0
			}
			continue
		}
		if rows > 0 {
			return nil, fmt.Errorf("line %d: expected a digit row, got %q", lineNo, line)
		}
		if title != "" {
			return nil, fmt.Errorf("line %d: title %q is not followed by a board", lineNo, title)
		}
		title = line
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if rows > 0 || title != "" {
		return nil, fmt.Errorf("line %d: input ends inside board %q", lineNo, title)
	}
	return puzzles, nil
}
