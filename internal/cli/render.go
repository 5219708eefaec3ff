package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/sudoku-solve/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	emptyDigit = lipgloss.NewStyle().Faint(true)
)

// renderBoard draws one final board for the terminal, with a colored
// outcome marker next to the title.
func renderBoard(title string, res *domain.Result) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := res.Board.Values[r][c]
			cell := fmt.Sprintf("%d", v)
			if v == 0 {
				cell = emptyDigit.Render("·")
			}
			sb.WriteString(cell)
			if c < 8 {
				sb.WriteByte(' ')
				if c%3 == 2 {
					sb.WriteByte(' ')
				}
			}
		}
		if r < 8 {
			sb.WriteByte('\n')
			if r%3 == 2 {
				sb.WriteByte('\n')
			}
		}
	}
	mark := okStyle.Render("solved")
	if !res.Solved {
		mark = failStyle.Render(res.Reason)
	}
	header := titleStyle.Render(title) + " " + mark
	return header + "\n" + boardStyle.Render(sb.String())
}

func renderSummary(solved, total int) string {
	line := fmt.Sprintf("%d/%d boards solved", solved, total)
	if solved == total {
		return okStyle.Render(line)
	}
	return failStyle.Render(line)
}
