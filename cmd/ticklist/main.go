// cmd/ticklist/main.go
//
// Entry point for the ticklist CLI. Running `ticklist` in a directory
// initializes its .ticklist/ folder, loads tasks.txt, and starts the
// interactive menu.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"ticklist/internal/config"
	"ticklist/internal/logbook"
	"ticklist/internal/storage"
	"ticklist/internal/tui"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitProjectDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .ticklist directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.New(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	lb, err := logbook.Open(filepath.Join(cfg.LogsDir(), "session.log"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session log: %v\n", err)
		os.Exit(1)
	}
	defer lb.Close()

	// A load failure is a warning, not a refusal to start: the session
	// continues on an empty list and the first successful save rewrites
	// the file.
	store := storage.NewStore(cfg.DataFilePath())
	var opts []tui.AppOption
	if err := store.Load(); err != nil {
		lb.Warn("Load failed, starting empty: %v", err)
		opts = append(opts, tui.WithStartupNotice(fmt.Sprintf("⚠ Could not read %s, starting with an empty list: %v", cfg.DataFilePath(), err)))
	}

	p := tea.NewProgram(tui.NewApp(cfg, store, lb, opts...))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running ticklist: %v\n", err)
		os.Exit(1)
	}
	lb.Info("Session closed")
	fmt.Println("Goodbye! 👋")
}
