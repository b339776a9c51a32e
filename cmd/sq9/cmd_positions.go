package main

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"sq9/internal/chart"
)

var (
	posFrom string
	posTo   string
	posStep string
	posDate string
)

// maxPositionRows bounds a --from/--to listing.
const maxPositionRows = 5000

// positionsCmd lists longitudes, cells and motion
var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List body positions, cells and motion",
	Long: `Lists every body's longitude, Square of 9 cell and motion code for one
date, or for each step between --from and --to.

Example:
  sq9 positions --date 01/01/2024
  sq9 positions --from 01/01/2024 --to 12/31/2024 --step month`,
	Args: cobra.NoArgs,
	RunE: runPositions,
}

func init() {
	positionsCmd.Flags().StringVar(&posDate, "date", "", "Date as MM/DD/YYYY (default: today)")
	positionsCmd.Flags().StringVar(&posFrom, "from", "", "First date of a range")
	positionsCmd.Flags().StringVar(&posTo, "to", "", "Last date of a range")
	positionsCmd.Flags().StringVar(&posStep, "step", "day", "Range step: day, week, month or year")
}

func runPositions(cmd *cobra.Command, args []string) error {
	tbl, err := loadTable(cmd.Context())
	if err != nil {
		return err
	}
	opts, err := chartOptions()
	if err != nil {
		return err
	}
	state := chart.New(tbl, opts...)

	days, err := positionDays(state)
	if err != nil {
		return err
	}

	data := pterm.TableData{bodyHeaders("Date")}
	for _, d := range days {
		state.SetDate(d)
		data = append(data, positionRow(state.Frame()))
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// positionDays resolves the flags into the list of dates to print, each
// clamped to the table.
func positionDays(state *chart.State) ([]time.Time, error) {
	if posFrom == "" && posTo == "" {
		if posDate == "" {
			return []time.Time{state.Date()}, nil
		}
		d, err := parseDate(posDate)
		if err != nil {
			return nil, err
		}
		return []time.Time{state.Table().Clamp(d)}, nil
	}

	tbl := state.Table()
	from, to := tbl.Min(), tbl.Max()
	if posFrom != "" {
		d, err := parseDate(posFrom)
		if err != nil {
			return nil, err
		}
		from = tbl.Clamp(d)
	}
	if posTo != "" {
		d, err := parseDate(posTo)
		if err != nil {
			return nil, err
		}
		to = tbl.Clamp(d)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("--to %s is before --from %s", to.Format(chart.DateLayout), from.Format(chart.DateLayout))
	}
	unit, ok := chart.ParseStepUnit(posStep)
	if !ok {
		return nil, fmt.Errorf("unknown step %q", posStep)
	}
	state.SetUnit(unit)

	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, state.StepDays()) {
		if len(days) == maxPositionRows {
			return nil, fmt.Errorf("range has more than %d rows, use a larger --step", maxPositionRows)
		}
		days = append(days, d)
	}
	return days, nil
}

// positionRow lists every body, hidden or not.
func positionRow(f *chart.Frame) []string {
	row := []string{f.Date.Format(chart.DateLayout)}
	for _, st := range f.Bodies {
		if !st.HasData {
			row = append(row, "-")
			continue
		}
		row = append(row, fmt.Sprintf("%.2f (%d) %s", st.Longitude, st.Cell, st.Motion.Symbol()))
	}
	return row
}
