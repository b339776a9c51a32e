package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"sq9/internal/chart"
	"sq9/internal/ephemeris"
)

// HelpMarkdown documents the key bindings as a markdown table.
func HelpMarkdown(k KeyMap) string {
	var sb strings.Builder
	sb.WriteString("# Square of 9 keys\n\n")
	sb.WriteString("| Key | Action |\n|---|---|\n")
	for _, b := range k.AllBindings() {
		h := b.Help()
		fmt.Fprintf(&sb, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	sb.WriteString("\nBody keys: ")
	parts := make([]string, 0, ephemeris.NumBodies)
	for _, b := range ephemeris.AllBodies() {
		parts = append(parts, fmt.Sprintf("`%s` %s", ToggleKey(b), b.Abbr()))
	}
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString("\n\nDates are typed as MM/DD/YYYY and clamped to the ephemeris range.\n")
	return sb.String()
}

// ReportMarkdown describes a frame as markdown: one row per body with its
// longitude, cell and motion.
func ReportMarkdown(f *chart.Frame) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Square of 9 – %s\n\n", f.Date.Format("January 2, 2006"))
	if !f.HasRow {
		sb.WriteString("_No ephemeris row for this date._\n")
		return sb.String()
	}
	sb.WriteString("| Body | Longitude | Cell | Motion |\n|---|---:|---:|---|\n")
	for _, st := range f.Bodies {
		if !st.Visible {
			fmt.Fprintf(&sb, "| %s | | | OFF |\n", st.Body.Name())
			continue
		}
		fmt.Fprintf(&sb, "| %s | %.2f | %d | %s |\n",
			st.Body.Name(), st.Longitude, st.Cell, st.Motion)
	}

	shared := sharedCells(f)
	if len(shared) > 0 {
		sb.WriteString("\n## Conjunct cells\n\n")
		for _, line := range shared {
			sb.WriteString("- " + line + "\n")
		}
	}
	return sb.String()
}

func sharedCells(f *chart.Frame) []string {
	var out []string
	seen := make(map[int]bool)
	for _, st := range f.Bodies {
		if !st.Visible || st.Cell == 0 || seen[st.Cell] {
			continue
		}
		seen[st.Cell] = true
		occ := f.Occupants(st.Cell)
		if len(occ) < 2 {
			continue
		}
		names := make([]string, len(occ))
		for i, b := range occ {
			names[i] = b.Abbr()
		}
		out = append(out, fmt.Sprintf("%d: %s", st.Cell, strings.Join(names, ", ")))
	}
	return out
}

// RenderMarkdown renders md for the terminal with the light or dark glamour
// style. width <= 0 disables wrapping.
func RenderMarkdown(md string, theme Theme, width int) (string, error) {
	style := "light"
	if theme.IsDark {
		style = "dark"
	}
	opts := []glamour.TermRendererOption{glamour.WithStylePath(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
