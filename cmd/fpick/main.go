package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkmr/fpick/internal/config"
	"github.com/dkmr/fpick/internal/frecency"
	"github.com/dkmr/fpick/internal/logging"
	"github.com/dkmr/fpick/internal/picker"
	"github.com/dkmr/fpick/internal/tui"
	"github.com/dkmr/fpick/internal/watch"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	workDir, err := resolveWorkDir()
	if err != nil {
		return err
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logPath, err := cfg.GetLogPath()
	if err != nil {
		logPath = ""
	}
	log := logging.Setup(logPath)

	historyPath, err := cfg.GetHistoryPath()
	if err != nil {
		return fmt.Errorf("failed to get history path: %w", err)
	}
	store := frecency.NewStore(historyPath, workDir, logging.ForComponent(log, "frecency"))

	session := picker.NewSession(picker.Options{
		Config:  cfg,
		WorkDir: workDir,
		Store:   store,
		Buffers: &picker.RecentOpens{},
		Log:     logging.ForComponent(log, "picker"),
	})

	var watcher *watch.Watcher
	if cfg.RefreshPolicy == config.RefreshWatch {
		watcher, err = watch.New(workDir, logging.ForComponent(log, "watch"))
		if err != nil {
			// The picker still works, it just won't notice new files.
			log.Warn("file watching unavailable", "error", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	model := tui.NewModel(session, watcher, logging.ForComponent(log, "tui"))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	// Stdout carries only the selection so the binary composes with
	// shells and editors: `vim "$(fpick)"`.
	if m, ok := final.(tui.Model); ok && m.Selected != "" {
		fmt.Println(m.Selected)
	}
	return nil
}

func resolveWorkDir() (string, error) {
	if len(os.Args) > 1 {
		abs, err := filepath.Abs(os.Args[1])
		if err != nil {
			return "", fmt.Errorf("invalid directory %q: %w", os.Args[1], err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("invalid directory %q: %w", os.Args[1], err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("%q is not a directory", os.Args[1])
		}
		return abs, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine working directory: %w", err)
	}
	return wd, nil
}
