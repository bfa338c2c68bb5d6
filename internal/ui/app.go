package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/specdeck/specdeck/internal/backend"
	"github.com/specdeck/specdeck/internal/config"
	"github.com/specdeck/specdeck/internal/openspec"
	"github.com/specdeck/specdeck/internal/process"
	"github.com/specdeck/specdeck/internal/ui/clipboard"
)

const (
	minWidth  = 60
	minHeight = 16
)

// spinnerTickMsg drives the status bar spinner while a command runs.
type spinnerTickMsg struct{}

type App struct {
	config      *config.Config
	backend     *backend.Backend
	projectPath string
	events      *process.ChanSink

	width  int
	height int
	ready  bool

	status    StatusPanel
	log       LogPanel
	statusBar StatusBar
	keys      KeyMap

	tools   []string
	running bool
	op      string
}

// NewApp builds the dashboard model. events is the sink the backend
// streams install/init output through; the model drains it one event per
// Update via listenForOutput. A nil sink disables streaming.
func NewApp(cfg *config.Config, b *backend.Backend, projectPath string, events *process.ChanSink) App {
	return App{
		config:      cfg,
		backend:     b,
		projectPath: projectPath,
		events:      events,
		status:      NewStatusPanel(),
		log:         NewLogPanel(cfg.UI.LogLines),
		statusBar:   NewStatusBar(),
		keys:        DefaultKeyMap(),
	}
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		a.discoverCmd(),
		a.cliStatusCmd(),
		a.managersCmd(),
	}
	if a.events != nil {
		cmds = append(cmds, listenForOutput(a.events.Events()))
	}
	if !a.config.Update.DisableCheck {
		cmds = append(cmds, checkUpdateCmd())
	}
	return tea.Batch(cmds...)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.propagateSizes()
		return a, nil

	case DiscoveredMsg:
		a.status.SetProject(msg.Project, msg.Err)
		return a, nil

	case CLIStatusMsg:
		a.status.SetCLI(msg.Status)
		if msg.Status.Available {
			return a, a.toolsCmd()
		}
		return a, nil

	case ManagersMsg:
		a.status.SetManagers(msg.Statuses)
		return a, nil

	case ToolsMsg:
		if msg.Err == nil {
			a.tools = msg.Tools
		}
		return a, nil

	case UpdateAvailableMsg:
		a.statusBar.SetFlash(
			fmt.Sprintf("update available: %s", msg.Release.Version), FlashInfo)
		return a, clearFlashLater()

	case OutputMsg:
		a.log.Append(msg.Event)
		if a.events != nil {
			return a, listenForOutput(a.events.Events())
		}
		return a, nil

	case CommandDoneMsg:
		a.running = false
		a.statusBar.SetRunning(false)
		if msg.Err != nil {
			a.log.Notice(fmt.Sprintf("%s failed: %s", msg.Operation, msg.Err.Message))
			a.statusBar.SetFlash(fmt.Sprintf("%s failed", msg.Operation), FlashError)
		} else {
			a.log.Notice(fmt.Sprintf("%s finished (exit %d)", msg.Operation, msg.Output.Status))
			a.statusBar.SetFlash(fmt.Sprintf("%s finished", msg.Operation), FlashSuccess)
		}
		// Re-probe: install changes CLI availability, init changes the marker.
		return a, tea.Batch(a.cliStatusCmd(), a.discoverCmd(), clearFlashLater())

	case spinnerTickMsg:
		if !a.running {
			return a, nil
		}
		a.statusBar.Tick()
		return a, spinnerTick()

	case ClearFlashMsg:
		a.statusBar.ClearFlash()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.CycleManager):
		a.status.CycleManager()
		return a, nil

	case key.Matches(msg, a.keys.Install):
		if a.running {
			return a, nil
		}
		mgr := a.status.SelectedManager()
		if mgr == "" {
			a.statusBar.SetFlash("no package manager selected", FlashWarning)
			return a, clearFlashLater()
		}
		a.running = true
		a.op = "install"
		a.statusBar.SetRunning(true)
		a.log.Clear(fmt.Sprintf("Installing CLI via %s", mgr))
		return a, tea.Batch(a.installCmd(mgr), spinnerTick())

	case key.Matches(msg, a.keys.Init):
		if a.running {
			return a, nil
		}
		a.running = true
		a.op = "init"
		a.statusBar.SetRunning(true)
		a.log.Clear("Initializing project")
		return a, tea.Batch(a.initCmd(), spinnerTick())

	case key.Matches(msg, a.keys.CopyLog):
		if err := clipboard.Write(a.log.Text()); err != nil {
			a.statusBar.SetFlash("copy failed", FlashError)
		} else {
			a.statusBar.SetFlash("log copied", FlashSuccess)
		}
		return a, clearFlashLater()

	case key.Matches(msg, a.keys.Refresh):
		return a, tea.Batch(a.discoverCmd(), a.cliStatusCmd(), a.managersCmd())
	}

	var cmd tea.Cmd
	a.log, cmd = a.log.Update(msg)
	return a, cmd
}

func (a App) View() string {
	if !a.ready {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, "Loading...")
	}

	if a.width < minWidth || a.height < minHeight {
		msg := fmt.Sprintf("Terminal too small (%d×%d)\nMinimum: %d×%d",
			a.width, a.height, minWidth, minHeight)
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, msg)
	}

	statusView := a.status.View()
	logView := a.log.View()
	barView := a.statusBar.View()

	return lipgloss.JoinVertical(lipgloss.Left, statusView, logView, barView)
}

func (a *App) propagateSizes() {
	statusH := 7
	barH := 1
	logH := a.height - statusH - barH
	if logH < 3 {
		logH = 3
	}
	a.status.SetSize(a.width, statusH)
	a.log.SetSize(a.width, logH)
	a.statusBar.SetSize(a.width)
}

func (a App) discoverCmd() tea.Cmd {
	b, path := a.backend, a.projectPath
	return func() tea.Msg {
		p, err := b.DiscoverProject(path)
		return DiscoveredMsg{Project: p, Err: err}
	}
}

func (a App) cliStatusCmd() tea.Cmd {
	b := a.backend
	return func() tea.Msg {
		return CLIStatusMsg{Status: b.CLIStatus()}
	}
}

func (a App) managersCmd() tea.Cmd {
	b := a.backend
	return func() tea.Msg {
		return ManagersMsg{Statuses: b.PackageManagerStatuses()}
	}
}

func (a App) toolsCmd() tea.Cmd {
	b := a.backend
	return func() tea.Msg {
		tools, err := b.ListSupportedTools()
		return ToolsMsg{Tools: tools, Err: err}
	}
}

func (a App) installCmd(manager string) tea.Cmd {
	b := a.backend
	return func() tea.Msg {
		out, err := b.InstallCLI(manager)
		return CommandDoneMsg{Operation: "install", Output: out, Err: err}
	}
}

func (a App) initCmd() tea.Cmd {
	b, path := a.backend, a.projectPath
	if p := a.status.project; p != nil {
		path = p.RepoPath
	}
	sel := openspec.Selection{Mode: openspec.ToolsAll}
	return func() tea.Msg {
		out, err := b.InitProject(path, sel)
		return CommandDoneMsg{Operation: "init", Output: out, Err: err}
	}
}

// listenForOutput reads one streamed event from the sink's channel and
// re-arms itself from the OutputMsg handler, so a full buffer backs up in
// the ChanSink (which drops) instead of in the program's mailbox.
func listenForOutput(ch <-chan process.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return OutputMsg{Event: ev}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func clearFlashLater() tea.Cmd {
	return tea.Tick(FlashDuration(), func(time.Time) tea.Msg {
		return ClearFlashMsg{}
	})
}

func checkUpdateCmd() tea.Cmd {
	return func() tea.Msg {
		rel, err := updateCheck()
		if err != nil || rel == nil {
			return nil
		}
		return UpdateAvailableMsg{Release: rel}
	}
}
