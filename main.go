package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvaillant/strum/internal/app"
	"github.com/mvaillant/strum/internal/config"
	"github.com/mvaillant/strum/internal/errmsg"
	"github.com/mvaillant/strum/internal/icons"
	"github.com/mvaillant/strum/internal/state"
)

// setupLogging routes slog to a file so log lines never corrupt the TUI.
func setupLogging() (*os.File, error) {
	logPath, err := xdg.StateFile(filepath.Join("strum", "strum.log"))
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
	return f, nil
}

func run() error {
	logFile, err := setupLogging()
	if err != nil {
		// Logging is best-effort; keep going with the default handler.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	} else {
		defer logFile.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpInitialize, err))
	}

	icons.Init(cfg.Icons)

	if cfg.CacheDir == "" {
		cfg.CacheDir = filepath.Join(xdg.CacheHome, "strum", "songs")
	}

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpStateOpen, err))
	}

	m := app.New(cfg, stateMgr)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		stateMgr.Close()
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
