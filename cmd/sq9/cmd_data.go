package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sq9/internal/chart"
	"sq9/internal/ephemeris"
	"sq9/internal/store"
)

// importCmd converts a CSV ephemeris into a SQLite cache
var importCmd = &cobra.Command{
	Use:   "import <csv> <db>",
	Short: "Import an ephemeris CSV into a SQLite cache",
	Long: `Parses the CSV once and stores it in SQLite. Point --data (or SQ9_DATA)
at the .db file afterwards to skip CSV parsing on startup.

Example:
  sq9 import Ephemeris_1900_2079.csv .sq9/ephemeris.db`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

// exportCmd writes the configured source back out as CSV
var exportCmd = &cobra.Command{
	Use:   "export <csv>",
	Short: "Write the ephemeris data source as CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

// rangeCmd reports the covered dates
var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Show the date range of the ephemeris data",
	Args:  cobra.NoArgs,
	RunE:  runRange,
}

func runImport(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]
	out := cmd.OutOrStdout()

	tbl, err := ephemeris.LoadFile(src)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", src, err)
	}

	s, err := store.Open(dst)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", dst, err)
	}
	defer s.Close()

	abs, err := filepath.Abs(src)
	if err != nil {
		abs = src
	}
	if err := s.Save(cmd.Context(), tbl, abs); err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}
	logger.Info("imported ephemeris", zap.String("src", src), zap.String("db", dst), zap.Int("rows", tbl.Len()))

	fmt.Fprint(out, pterm.Success.Sprintfln("Imported %d days (%s – %s) into %s",
		tbl.Len(), tbl.Min().Format(chart.DateLayout), tbl.Max().Format(chart.DateLayout), dst))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	tbl, err := loadTable(cmd.Context())
	if err != nil {
		return err
	}
	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", args[0], err)
	}
	if err := ephemeris.WriteCSV(f, tbl); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", args[0], err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), pterm.Success.Sprintfln("Wrote %d days to %s", tbl.Len(), args[0]))
	return nil
}

func runRange(cmd *cobra.Command, args []string) error {
	tbl, err := loadTable(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s %s\n", pterm.LightCyan("Source:"), cfg.Data)
	fmt.Fprintf(out, "%s %s\n", pterm.LightCyan("First: "), tbl.Min().Format(chart.DateLayout))
	fmt.Fprintf(out, "%s %s\n", pterm.LightCyan("Last:  "), tbl.Max().Format(chart.DateLayout))
	fmt.Fprintf(out, "%s %d\n", pterm.LightCyan("Days:  "), tbl.Len())

	if !store.IsDatabase(cfg.Data) {
		return nil
	}
	s, err := store.Open(cfg.Data)
	if err != nil {
		return err
	}
	defer s.Close()
	fmt.Fprintf(out, "%s %s\n", pterm.Gray("cache:"), s.Path())
	for _, key := range []string{"source", "imported_at"} {
		v, ok, err := s.Meta(cmd.Context(), key)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(out, "%s %s\n", pterm.Gray(key+":"), v)
		}
	}
	return nil
}
