package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/specdeck/specdeck/internal/backend"
	"github.com/specdeck/specdeck/internal/config"
	"github.com/specdeck/specdeck/internal/git"
	"github.com/specdeck/specdeck/internal/pkgmgr"
)

// statusReport is the headless JSON shape printed by "specdeck status".
type statusReport struct {
	Project      *git.Project           `json:"project,omitempty"`
	ProjectError *backend.Error         `json:"projectError,omitempty"`
	CLI          cliReport              `json:"cli"`
	Managers     []pkgmgr.ManagerStatus `json:"managers"`
}

type cliReport struct {
	Installed bool   `json:"installed"`
	Version   string `json:"version,omitempty"`
}

func runStatus(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	b, err := backend.New(cfg, nil)
	if err != nil {
		return err
	}

	var report statusReport
	report.Project, report.ProjectError = b.DiscoverProject(path)

	cli := b.CLIStatus()
	report.CLI = cliReport{Installed: cli.Available, Version: cli.Version}
	report.Managers = b.PackageManagerStatuses()

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal status: %w", err)
	}
	data = append(data, '\n')
	_, err = os.Stdout.Write(data)
	return err
}
