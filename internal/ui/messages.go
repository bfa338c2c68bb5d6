package ui

import (
	"github.com/specdeck/specdeck/internal/backend"
	"github.com/specdeck/specdeck/internal/git"
	"github.com/specdeck/specdeck/internal/openspec"
	"github.com/specdeck/specdeck/internal/pkgmgr"
	"github.com/specdeck/specdeck/internal/process"
	"github.com/specdeck/specdeck/internal/update"
)

// OutputMsg carries one line of child-process output into the UI.
type OutputMsg struct {
	Event process.Event
}

// DiscoveredMsg reports the result of project discovery.
type DiscoveredMsg struct {
	Project *git.Project
	Err     *backend.Error
}

// CLIStatusMsg reports the result of the CLI availability probe.
type CLIStatusMsg struct {
	Status openspec.Status
}

// ManagersMsg reports the probed package manager statuses.
type ManagersMsg struct {
	Statuses []pkgmgr.ManagerStatus
}

// ToolsMsg reports the parsed supported-tools list, used to
// prefill the init selection.
type ToolsMsg struct {
	Tools []string
	Err   *backend.Error
}

// CommandDoneMsg reports that a streaming command finished.
type CommandDoneMsg struct {
	Operation string
	Output    *backend.CommandOutput
	Err       *backend.Error
}

// UpdateAvailableMsg reports that a newer release exists.
type UpdateAvailableMsg struct {
	Release *update.Release
}

// ClearFlashMsg clears the status bar flash message.
type ClearFlashMsg struct{}
