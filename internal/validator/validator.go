package validator

import (
	"context"

	"svw.info/sudoku-solve/internal/domain"
)

// FastValidator checks row/column/box uniqueness with bitmasks and
// reports the cells that repeat an earlier digit.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

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

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for u := 0; u < 27; u++ {
		seen := 0
		for i := 0; i < 9; i++ {
			r, c := unitCell(u, i)
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if seen&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			seen |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
