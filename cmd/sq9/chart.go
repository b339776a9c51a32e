package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"sq9/internal/chart"
	"sq9/internal/ephemeris"
	"sq9/internal/spiral"
	"sq9/internal/store"
)

// loadTable reads the configured ephemeris source.
func loadTable(ctx context.Context) (*ephemeris.Table, error) {
	start := time.Now()
	tbl, err := store.LoadSource(ctx, cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to load ephemeris %s: %w", cfg.Data, err)
	}
	logger.Debug("ephemeris loaded",
		zap.String("path", cfg.Data),
		zap.Int("rows", tbl.Len()),
		zap.Duration("took", time.Since(start)))
	return tbl, nil
}

// chartOptions translates the chart config into state options.
func chartOptions() ([]chart.Option, error) {
	grid, err := spiral.Build(cfg.Chart.GridSize)
	if err != nil {
		return nil, err
	}
	unit, ok := chart.ParseStepUnit(cfg.Chart.StepUnit)
	if !ok {
		return nil, fmt.Errorf("unknown step unit %q", cfg.Chart.StepUnit)
	}
	hidden, err := parseBodies(cfg.Chart.HiddenBodies)
	if err != nil {
		return nil, err
	}
	return []chart.Option{
		chart.WithGrid(grid),
		chart.WithStepUnit(unit),
		chart.WithHidden(hidden...),
		chart.WithClassifier(ephemeris.Classifier{Threshold: cfg.Chart.StationaryThreshold}),
	}, nil
}

// newState builds the chart state for the given MM/DD/YYYY date, or today
// when dateText is empty. Extra options are applied last.
func newState(tbl *ephemeris.Table, dateText string, extra ...chart.Option) (*chart.State, error) {
	opts, err := chartOptions()
	if err != nil {
		return nil, err
	}
	if dateText != "" {
		d, err := parseDate(dateText)
		if err != nil {
			return nil, err
		}
		if !tbl.Contains(d) {
			logger.Info("date outside ephemeris range, clamping",
				zap.String("date", dateText),
				zap.Time("min", tbl.Min()),
				zap.Time("max", tbl.Max()))
		}
		opts = append(opts, chart.WithDate(d))
	}
	return chart.New(tbl, append(opts, extra...)...), nil
}

func parseDate(text string) (time.Time, error) {
	d, err := time.Parse(chart.DateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use MM/DD/YYYY", text)
	}
	return d, nil
}

// parseBodies resolves abbreviations such as "NN" or "mars".
func parseBodies(names []string) ([]ephemeris.Body, error) {
	out := make([]ephemeris.Body, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		b, ok := ephemeris.ParseBody(name)
		if !ok {
			return nil, fmt.Errorf("unknown body %q", name)
		}
		out = append(out, b)
	}
	return out, nil
}
