package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sq9/cmd/sq9/ui"
	"sq9/internal/ephemeris"
	"sq9/internal/logging"
	"sq9/internal/store"
)

// runInteractive opens the chart TUI. With --watch the data file is watched
// and every successful reload is sent into the running program.
func runInteractive(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	tbl, err := loadTable(ctx)
	if err != nil {
		return err
	}
	state, err := newState(tbl, "")
	if err != nil {
		return err
	}

	logging.Boot("opening chart on %s (%d days, theme %s)", state.DateText(), tbl.Len(), cfg.UI.Theme)

	model := ui.NewModel(state, ui.Options{
		Styles:    ui.DefaultStyles(cfg.UI.Theme),
		CellWidth: cfg.UI.CellWidth,
	})

	var progOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, progOpts...)

	if !watch {
		_, err := p.Run()
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	w, err := ephemeris.NewWatcher(cfg.Data, store.Loader(gctx), func(t *ephemeris.Table) {
		p.Send(ui.TableReloadedMsg{Table: t})
	})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", cfg.Data, err)
	}
	w.SetDebounce(cfg.UI.WatchDebounce)
	if err := w.Start(gctx); err != nil {
		w.Stop()
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	logger.Info("watching data file", zap.String("path", cfg.Data))

	g.Go(func() error {
		defer cancel()
		defer w.Stop()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		// Ends with the program, or quits it on outside cancellation.
		<-gctx.Done()
		p.Quit()
		return nil
	})

	err = g.Wait()
	reloads, failures := w.Stats()
	logger.Info("watcher stopped", zap.Int("reloads", reloads), zap.Int("failures", failures))
	return err
}
