package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sq9/internal/chart"
	"sq9/internal/ephemeris"
)

// ToggleKey returns the key that toggles b in the TUI.
func ToggleKey(b ephemeris.Body) string {
	switch {
	case b == ephemeris.NorthNode:
		return "n"
	case b == ephemeris.Pluto:
		return "0"
	case b >= ephemeris.Sun && b < ephemeris.Pluto:
		return fmt.Sprintf("%d", int(b)+1)
	}
	return ""
}

// MotionText returns the sidebar status of a body: OFF when hidden, "?" when
// the date has no row, the motion symbol otherwise.
func MotionText(st chart.BodyStatus) string {
	switch {
	case !st.Visible:
		return "OFF"
	case !st.HasData:
		return ephemeris.MotionUnknown.Symbol()
	default:
		return st.Motion.Symbol()
	}
}

// RenderLegend lists every body with its swatch and checkbox.
func RenderLegend(f *chart.Frame, s Styles) string {
	lines := []string{s.Title.Render("Legend")}
	for _, b := range ephemeris.AllBodies() {
		st := f.Bodies[b]
		box := "[ ]"
		if st.Visible {
			box = "[x]"
		}
		swatch := bodyStyle(lipgloss.NewStyle(), b).Render("  ")
		lines = append(lines, fmt.Sprintf("%s %s %s %s %s",
			s.Muted.Render(ToggleKey(b)), box, swatch, s.Body.Render(fmt.Sprintf("%-4s", b.Abbr())), s.Muted.Render(b.Name())))
	}
	return strings.Join(lines, "\n")
}

// RenderGroups draws the group buttons. The first label follows the All
// Off toggle.
func RenderGroups(state *chart.State, s Styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.Button.Render("A "+state.AllOffLabel()), " ",
		s.Button.Render("I Inner"), " ",
		s.Button.Render("O Outer"))
}

// RenderMotion draws the Planet Motion panel.
func RenderMotion(f *chart.Frame, s Styles) string {
	lines := []string{s.Title.Render("Planet Motion")}
	for _, b := range ephemeris.AllBodies() {
		st := f.Bodies[b]
		text := MotionText(st)
		var badge string
		switch {
		case text == "OFF":
			badge = s.Off.Render(text)
		case st.Motion == ephemeris.Retrograde:
			badge = s.Retrograde.Render(text)
		case st.Motion == ephemeris.Stationary:
			badge = s.Stationary.Render(text)
		default:
			badge = s.Direct.Render(text)
		}
		lines = append(lines, fmt.Sprintf("%-4s – %s", b.Abbr(), badge))
	}
	lines = append(lines, s.Muted.Render("D Direct  R Retrograde"), s.Muted.Render("S Stationary"))
	return strings.Join(lines, "\n")
}

// RenderSidebar stacks the legend, the group buttons and the motion panel.
func RenderSidebar(state *chart.State, f *chart.Frame, s Styles) string {
	return s.Sidebar.Width(SidebarWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		RenderLegend(f, s),
		s.Section.Render(RenderGroups(state, s)),
		s.Section.Render(RenderMotion(f, s)),
	))
}
