package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"sq9/cmd/sq9/ui"
	"sq9/internal/chart"
	"sq9/internal/ephemeris"
	"sq9/internal/spiral"
)

var (
	chartDate   string
	chartHide   []string
	chartPlain  bool
	cellLocate  bool
	reportWidth int
	gridSize    int
)

// showCmd prints the chart for one day
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the chart for a date",
	Long: `Prints the spiral with every visible body placed on its cell, next to
the legend and the motion panel. Dates outside the ephemeris are clamped.

Example:
  sq9 show --date 03/20/2024 --hide NN,MOON`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

// reportCmd renders a markdown summary for one day
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a markdown report of positions and motion",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

// cellCmd maps longitudes to cells
var cellCmd = &cobra.Command{
	Use:   "cell <degree>...",
	Short: "Print the Square of 9 cell of each longitude",
	Long: `Prints the cell (1..360) each longitude falls on. Negative values wrap,
so -1 maps to 359. Put negative values after "--".

Example:
  sq9 cell 0 90.5 -- -1`,
	Args: cobra.MinimumNArgs(1),
	RunE:  runCell,
}

// gridCmd prints the bare spiral
var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print the number spiral",
	Args:  cobra.NoArgs,
	RunE:  runGrid,
}

func init() {
	for _, c := range []*cobra.Command{showCmd, reportCmd} {
		c.Flags().StringVar(&chartDate, "date", "", "Date as MM/DD/YYYY (default: today)")
		c.Flags().StringSliceVar(&chartHide, "hide", nil, "Bodies to hide (default from config: NN)")
	}
	showCmd.Flags().BoolVar(&chartPlain, "plain", false, "Print text only, without colors or sidebar")
	reportCmd.Flags().IntVar(&reportWidth, "width", 80, "Word wrap width")
	cellCmd.Flags().BoolVar(&cellLocate, "locate", false, "Also print the cell's row and column in the spiral")
	gridCmd.Flags().IntVar(&gridSize, "size", spiral.DefaultSize, "Spiral side (odd)")
}

// stateForFlags loads the table and builds the state for --date/--hide.
func stateForFlags(cmd *cobra.Command) (*chart.State, error) {
	tbl, err := loadTable(cmd.Context())
	if err != nil {
		return nil, err
	}
	var extra []chart.Option
	if cmd.Flags().Changed("hide") {
		hidden, err := parseBodies(chartHide)
		if err != nil {
			return nil, err
		}
		extra = append(extra, chart.WithHidden(hidden...))
	}
	return newState(tbl, chartDate, extra...)
}

func runShow(cmd *cobra.Command, args []string) error {
	state, err := stateForFlags(cmd)
	if err != nil {
		return err
	}
	frame := state.Frame()
	out := cmd.OutOrStdout()

	if chartPlain {
		fmt.Fprintln(out, frame.Date.Format(chart.DateLayout))
		fmt.Fprint(out, ui.RenderPlainGrid(frame))
		for _, st := range frame.Bodies {
			fmt.Fprintf(out, "%-4s %s\n", st.Body.Abbr(), ui.MotionText(st))
		}
		return nil
	}

	styles := ui.DefaultStyles(cfg.UI.Theme)
	fmt.Fprintln(out, styles.Header.Render("Square of 9 – "+frame.Date.Format("Mon Jan 2, 2006")))
	fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top,
		ui.RenderSidebar(state, frame, styles),
		ui.RenderGrid(frame, styles, cfg.UI.CellWidth)))
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	state, err := stateForFlags(cmd)
	if err != nil {
		return err
	}
	md := ui.ReportMarkdown(state.Frame())
	rendered, err := ui.RenderMarkdown(md, ui.ThemeByName(cfg.UI.Theme), reportWidth)
	if err != nil {
		logger.Debug("markdown render failed, printing raw")
		rendered = md
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

func runCell(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	g, err := spiral.Build(cfg.Chart.GridSize)
	if err != nil {
		return err
	}
	for _, arg := range args {
		deg, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid degree %q: %w", arg, err)
		}
		cell := spiral.DegreeToCell(deg)
		if !cellLocate {
			fmt.Fprintf(out, "%s\t%d\n", arg, cell)
			continue
		}
		// rows and columns are 1-based, counted from the top left
		if row, col, ok := g.Locate(cell); ok {
			fmt.Fprintf(out, "%s\t%d\trow %d col %d\n", arg, cell, row+1, col+1)
		} else {
			fmt.Fprintf(out, "%s\t%d\toff grid\n", arg, cell)
		}
	}
	return nil
}

func runGrid(cmd *cobra.Command, args []string) error {
	g, err := spiral.Build(gridSize)
	if err != nil {
		return err
	}
	// An empty frame prints just the numbers.
	fmt.Fprint(cmd.OutOrStdout(), ui.RenderPlainGrid(&chart.Frame{Grid: g}))
	return nil
}

// bodyHeaders returns the table header row used by positions and range.
func bodyHeaders(first string) []string {
	out := []string{first}
	for _, b := range ephemeris.AllBodies() {
		out = append(out, b.Abbr())
	}
	return out
}
