package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/quaver/internal/app"
	"github.com/llehouerou/quaver/internal/config"
	"github.com/llehouerou/quaver/internal/icons"
	"github.com/llehouerou/quaver/internal/logging"
	"github.com/llehouerou/quaver/internal/state"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run starts the queue screen. Arguments are files or directories appended
// to the saved queue.
func run(paths []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.GetLog())
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open(stateDefaults(cfg.GetDisplay()), logger)
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer func() {
		if err := stateMgr.Close(); err != nil {
			logger.Error("close state", zap.Error(err))
		}
	}()

	m := app.New(app.Deps{
		Config: cfg,
		State:  stateMgr,
		Logger: logger,
		Paths:  paths,
	})

	logger.Info("starting", zap.Strings("paths", paths))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// stateDefaults turns the configured display defaults into the values used
// for settings never changed in the UI.
func stateDefaults(d config.DisplayConfig) state.Defaults {
	defaults := state.DefaultDefaults()
	defaults.RowHeight = d.RowHeight
	defaults.FontSize = d.FontSize
	defaults.ScrollWithCurrentSong = d.ScrollWithCurrentSong
	defaults.CacheImages = d.CacheImages
	if d.Volume != nil {
		defaults.Volume = *d.Volume
	}
	return defaults
}
