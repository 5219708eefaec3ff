package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/ports"
)

// DLXSolver is an Algorithm X / Dancing Links backend behind the same
// port as DeduceSolver. Exact-cover mapping: 324 constraint columns and
// 729 candidate rows, one per (row, col, digit) triple.
// Columns: 0..80   cell (r,c) is filled
//          81..161 row r contains digit v
//          162..242 column c contains digit v
//          243..323 box b contains digit v, b = (r/3)*3 + c/3
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

const (
	dlxCols = 324
	dlxRows = 729
)

type dlxNode struct {
	left, right, up, down *dlxNode
	head                  *dlxHeader
	row                   int // 0..728 identifies (r,c,v)
}

type dlxHeader struct {
	dlxNode
	size int
}

// matrix is the toroidal linked structure. The root header closes the
// column ring; a column is covered by splicing it out of that ring.
type matrix struct {
	root    dlxHeader
	heads   [dlxCols]*dlxHeader
	rowRef  [dlxRows]*dlxNode
	picked  [81]*dlxNode
	depth   int
	visited int
}

func newMatrix() *matrix {
	m := &matrix{}
	m.root.left = &m.root.dlxNode
	m.root.right = &m.root.dlxNode
	for i := 0; i < dlxCols; i++ {
		h := &dlxHeader{}
		h.up = &h.dlxNode
		h.down = &h.dlxNode
		h.head = h
		// append to the header ring
		h.left = m.root.left
		h.right = &m.root.dlxNode
		m.root.left.right = &h.dlxNode
		m.root.left = &h.dlxNode
		m.heads[i] = h
	}
	for row := 0; row < dlxRows; row++ {
		r, c, v := decodeCandidate(row)
		var first, prev *dlxNode
		for _, col := range candidateColumns(r, c, v) {
			h := m.heads[col]
			n := &dlxNode{head: h, row: row}
			n.down = &h.dlxNode
			n.up = h.up
			h.up.down = n
			h.up = n
			h.size++
			if first == nil {
				first = n
				n.left = n
				n.right = n
			} else {
				n.left = prev
				n.right = prev.right
				prev.right.left = n
				prev.right = n
			}
			prev = n
		}
		m.rowRef[row] = first
	}
	return m
}

func encodeCandidate(r, c int, v uint8) int {
	return (r*9+c)*9 + int(v) - 1
}

func decodeCandidate(row int) (r, c int, v uint8) {
	return row / 81, (row / 9) % 9, uint8(row%9) + 1
}

func candidateColumns(r, c int, v uint8) [4]int {
	d := int(v) - 1
	return [4]int{
		r*9 + c,
		81 + r*9 + d,
		162 + c*9 + d,
		243 + boxOf(r, c)*9 + d,
	}
}

func (m *matrix) cover(h *dlxHeader) {
	h.right.left = h.left
	h.left.right = h.right
	for i := h.down; i != &h.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.head.size--
		}
	}
}

func (m *matrix) uncover(h *dlxHeader) {
	for i := h.up; i != &h.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.head.size++
			j.down.up = j
			j.up.down = j
		}
	}
	h.right.left = &h.dlxNode
	h.left.right = &h.dlxNode
}

// shortestColumn picks the uncovered column with the fewest rows.
func (m *matrix) shortestColumn() *dlxHeader {
	var best *dlxHeader
	for n := m.root.right; n != &m.root.dlxNode; n = n.right {
		h := n.head
		if best == nil || h.size < best.size {
			best = h
			if best.size == 0 {
				break
			}
		}
	}
	return best
}

// selectRow commits a candidate row: covers all four of its columns.
// Used for givens before the search starts.
func (m *matrix) selectRow(row int) {
	n := m.rowRef[row]
	m.picked[m.depth] = n
	m.depth++
	m.cover(n.head)
	for j := n.right; j != n; j = j.right {
		m.cover(j.head)
	}
}

func (m *matrix) search(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	if m.root.right == &m.root.dlxNode {
		return true
	}
	h := m.shortestColumn()
	if h.size == 0 {
		return false
	}
	m.cover(h)
	for n := h.down; n != &h.dlxNode; n = n.down {
		m.visited++
		m.picked[m.depth] = n
		m.depth++
		for j := n.right; j != n; j = j.right {
			m.cover(j.head)
		}
		if m.search(ctx) {
			return true
		}
		for j := n.left; j != n; j = j.left {
			m.uncover(j.head)
		}
		m.depth--
	}
	m.uncover(h)
	return false
}

func (s *DLXSolver) Solve(ctx context.Context, b *domain.Board) (domain.Result, ports.Stats, error) {
	start := time.Now()
	m := newMatrix()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b.Values[r][c]
			if v > 9 {
				return domain.Result{Board: *b}, ports.Stats{}, ErrMalformedBoard
			}
			if v == 0 {
				continue
			}
			// A given whose columns are already covered repeats a digit
			// within a unit; the board has no solution.
			n := m.rowRef[encodeCandidate(r, c, v)]
			if !m.rowLive(n) {
				st := ports.Stats{Duration: time.Since(start)}
				return domain.Result{Board: *b, Reason: domain.ReasonNoSolution}, st, nil
			}
			m.selectRow(encodeCandidate(r, c, v))
		}
	}
	ok := m.search(ctx)
	st := ports.Stats{Nodes: m.visited, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return domain.Result{Board: *b}, st, err
	}
	if !ok {
		return domain.Result{Board: *b, Reason: domain.ReasonNoSolution}, st, nil
	}
	var out domain.Board
	for i := 0; i < m.depth; i++ {
		r, c, v := decodeCandidate(m.picked[i].row)
		out.Values[r][c] = v
	}
	return domain.Result{Board: out, Solved: true}, st, nil
}

// rowLive reports whether every column of a candidate row is still in
// the header ring.
func (m *matrix) rowLive(n *dlxNode) bool {
	live := func(h *dlxHeader) bool {
		for x := m.root.right; x != &m.root.dlxNode; x = x.right {
			if x.head == h {
				return true
			}
		}
		return false
	}
	if !live(n.head) {
		return false
	}
	for j := n.right; j != n; j = j.right {
		if !live(j.head) {
			return false
		}
	}
	return true
}
