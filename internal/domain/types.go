package domain

// Board holds the current cell values of a 9x9 grid. Zero means empty.
type Board struct {
	Values [9][9]uint8 `json:"board"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is one parsed input board with its title line.
type Puzzle struct {
	Title string `json:"title"`
	Board Board  `json:"board"`
}

// Failure reasons carried by Result when a board could not be solved.
const (
	ReasonGuessLimit = "guess limit exceeded"
	ReasonNoSolution = "no solution found"
)

// Result is the outcome of solving one board. Board carries the final
// state, complete or partial, regardless of outcome; Reason is set only
// when Solved is false.
type Result struct {
	Board  Board  `json:"board"`
	Solved bool   `json:"solved"`
	Reason string `json:"reason,omitempty"`
}

// Filled reports whether every cell holds a digit.
func (b *Board) Filled() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// Givens counts the non-empty cells.
func (b *Board) Givens() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}
