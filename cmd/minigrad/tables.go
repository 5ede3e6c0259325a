package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/minigrad/gradcheck"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Faint(false).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Faint(true).
			PaddingLeft(1).PaddingRight(1)
	redRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}).
			Bold(true).
			PaddingLeft(1).PaddingRight(1)
)

// tableWithReds is a table whose failing rows are rendered in red.
type tableWithReds struct {
	Table *lgtable.Table
	Count int
	Reds  map[int]bool
}

func (t *tableWithReds) Row(isRed bool, row ...string) {
	if isRed {
		t.Reds[t.Count] = true
	}
	t.Table.Row(row...)
	t.Count++
}

func newTableWithReds(alignments ...lipgloss.Position) *tableWithReds {
	t := &tableWithReds{
		Reds: make(map[int]bool),
	}
	t.Table = lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if row < 0 {
				s = headerRowStyle
				return
			}
			switch {
			case t.Reds[row]:
				s = redRowStyle
			case row%2 == 0:
				s = oddRowStyle
			default:
				s = evenRowStyle
			}
			alignment := lipgloss.Left
			if col < len(alignments) {
				alignment = alignments[col]
			} else if len(alignments) > 0 {
				alignment = alignments[len(alignments)-1]
			}
			s = s.Align(alignment)
			return
		})
	return t
}

func catalogTable(cases []gradcheck.Case) string {
	t := newTableWithReds(lipgloss.Left, lipgloss.Left, lipgloss.Right, lipgloss.Left)
	t.Table.Headers("Case", "Expression", "Arity", "Points")
	for _, c := range cases {
		points := make([]string, len(c.Points))
		for i, p := range c.Points {
			points[i] = formatPoint(p)
		}
		t.Row(false, c.Name, c.Expression, strconv.Itoa(c.Arity), strings.Join(points, " "))
	}
	return t.Table.Render()
}

func resultsTable(results []gradcheck.Result) string {
	t := newTableWithReds(lipgloss.Left, lipgloss.Left, lipgloss.Right, lipgloss.Right, lipgloss.Right, lipgloss.Center)
	t.Table.Headers("Case", "Point", "Arg", "Analytic", "Numeric", "Status")
	for _, r := range results {
		point := formatPoint(r.Point)
		if len(r.Args) == 0 {
			t.Row(true, r.Case, point, "-", "-", "-", "error")
			continue
		}
		for _, arg := range r.Args {
			status := "ok"
			if !arg.OK {
				status = "MISMATCH"
			}
			t.Row(!arg.OK, r.Case, point, strconv.Itoa(arg.Index),
				fmt.Sprintf("%.6g", arg.Analytic), fmt.Sprintf("%.6g", arg.Numeric), status)
		}
	}
	return t.Table.Render()
}

func formatPoint(p []float64) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
