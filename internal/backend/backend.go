// Package backend exposes the operations the UI invokes: project discovery,
// tool status probes, CLI install, and spec project initialization. Streamed
// command output goes to the sink the Backend was built with; every failure
// is classified into a stable code+message payload.
package backend

import (
	"fmt"

	"github.com/specdeck/specdeck/internal/config"
	"github.com/specdeck/specdeck/internal/git"
	"github.com/specdeck/specdeck/internal/openspec"
	"github.com/specdeck/specdeck/internal/pkgmgr"
	"github.com/specdeck/specdeck/internal/process"
)

type Backend struct {
	cli      *openspec.Client
	managers *pkgmgr.Service
	sink     process.Sink
}

// New builds a Backend from the loaded config. sink receives live output
// during InstallCLI and InitProject; nil disables streaming.
func New(cfg *config.Config, sink process.Sink) (*Backend, error) {
	catalog, err := pkgmgr.LoadCatalog(cfg.Managers.Catalog)
	if err != nil {
		return nil, fmt.Errorf("load package manager catalog: %w", err)
	}
	return &Backend{
		cli:      openspec.NewClient(cfg.CLI.Binary),
		managers: pkgmgr.NewService(catalog),
		sink:     sink,
	}, nil
}

// SetSink replaces the output sink. Must not be called while a streamed
// operation is in flight.
func (b *Backend) SetSink(sink process.Sink) {
	b.sink = sink
}

// CommandOutput is the result payload of a streamed command run.
type CommandOutput struct {
	Status int    `json:"status"`
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
}

// DiscoverProject resolves path to its repository root and reports whether
// a spec project already exists there.
func (b *Backend) DiscoverProject(path string) (*git.Project, *Error) {
	project, err := git.Discover(path)
	if err != nil {
		return nil, classify(err)
	}
	return project, nil
}

// CLIStatus reports whether the OpenSpec CLI is installed. Never fails.
func (b *Backend) CLIStatus() openspec.Status {
	return b.cli.Status()
}

// PackageManagerStatuses probes the known package managers in catalog
// order. Never fails.
func (b *Backend) PackageManagerStatuses() []pkgmgr.ManagerStatus {
	return b.managers.Statuses()
}

// ListSupportedTools returns the tool names the installed CLI advertises.
func (b *Backend) ListSupportedTools() ([]string, *Error) {
	tools, err := b.cli.ListTools()
	if err != nil {
		return nil, classify(err)
	}
	return tools, nil
}

// InstallCLI installs the OpenSpec CLI via the named package manager,
// streaming output under the "install" operation label.
func (b *Backend) InstallCLI(manager string) (*CommandOutput, *Error) {
	res, err := b.managers.Install(manager, b.sink)
	if err != nil {
		return nil, classify(err)
	}
	return commandOutput(res), nil
}

// InitProject initializes a spec project at path with the selected tools,
// streaming output under the "init" operation label.
func (b *Backend) InitProject(path string, sel openspec.Selection) (*CommandOutput, *Error) {
	res, err := b.cli.Init(path, sel, b.sink)
	if err != nil {
		return nil, classify(err)
	}
	return commandOutput(res), nil
}

func commandOutput(res *process.Result) *CommandOutput {
	return &CommandOutput{
		Status: res.ExitCode,
		Stdout: res.Stdout,
		Stderr: res.Stderr,
	}
}
