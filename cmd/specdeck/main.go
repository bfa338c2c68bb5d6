package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/specdeck/specdeck/internal/backend"
	"github.com/specdeck/specdeck/internal/config"
	"github.com/specdeck/specdeck/internal/process"
	"github.com/specdeck/specdeck/internal/ui"
)

func main() {
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "version", "--version", "-v":
			runVersion()
			return
		case "update":
			if err := runUpdate(); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		case "status":
			path := "."
			if len(args) > 1 {
				path = args[1]
			}
			if err := runStatus(path); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		case "help", "--help", "-h":
			printUsage()
			return
		}
	}

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	sink := process.NewChanSink(cfg.UI.EventBuffer)
	b, err := backend.New(cfg, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	model := ui.NewApp(cfg, b, path, sink)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`specdeck — spec-driven project companion

Usage:
  specdeck [path]          open the dashboard for a project folder
  specdeck status [path]   print environment status as JSON
  specdeck version         print the version and check for updates
  specdeck update          self-update to the latest release
`)
}
