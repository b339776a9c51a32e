package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sq9/internal/chart"
	"sq9/internal/ephemeris"
)

// CellLabel returns the body line of a cell: the painting body's
// abbreviation, with "+" when other visible bodies share the cell.
func CellLabel(f *chart.Frame, cell int) string {
	occ := f.Occupants(cell)
	if len(occ) == 0 {
		return ""
	}
	label := occ[len(occ)-1].Abbr()
	if len(occ) > 1 {
		label += "+"
	}
	return label
}

// cellStyle picks the fill for one cell. Body color wins over the cardinal
// cross shading.
func cellStyle(s Styles, f *chart.Frame, row, col, cell int) lipgloss.Style {
	if b, ok := f.Painter(cell); ok {
		return bodyStyle(s.Cell, b)
	}
	if f.Grid.IsCardinal(row, col) {
		return s.Cardinal
	}
	return s.Cell
}

func bodyStyle(base lipgloss.Style, b ephemeris.Body) lipgloss.Style {
	fg := TextDark
	if b.LightText() {
		fg = TextLight
	}
	return base.
		Background(lipgloss.Color(b.Color())).
		Foreground(fg)
}

// RenderGrid draws the spiral for f. Each cell is cellWidth columns wide and
// two rows tall: the cell number and, when occupied, the body label.
func RenderGrid(f *chart.Frame, s Styles, cellWidth int) string {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	g := f.Grid
	rows := make([]string, 0, g.Size())
	for r := 0; r < g.Size(); r++ {
		cells := make([]string, 0, g.Size())
		for c := 0; c < g.Size(); c++ {
			n := g.At(r, c)
			style := cellStyle(s, f, r, c, n).Width(cellWidth)
			label := truncate(CellLabel(f, n), cellWidth)
			if label == "" {
				label = " "
			}
			cells = append(cells, style.Render(strconv.Itoa(n)+"\n"+label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderPlainGrid draws the spiral as aligned text with no colors, marking
// occupied cells with the painting body. Used for non-interactive output.
func RenderPlainGrid(f *chart.Frame) string {
	g := f.Grid
	width := len(strconv.Itoa(g.Max()))
	for _, b := range ephemeris.AllBodies() {
		if l := len(b.Abbr()) + 1; l > width {
			width = l
		}
	}
	var sb strings.Builder
	for _, row := range g.Rows() {
		for c, n := range row {
			text := strconv.Itoa(n)
			if label := CellLabel(f, n); label != "" {
				text = label
			}
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(padLeft(text, width))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func padLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat(" ", n-len(s)) + s
}
