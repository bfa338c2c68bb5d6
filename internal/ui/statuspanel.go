package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/specdeck/specdeck/internal/backend"
	"github.com/specdeck/specdeck/internal/git"
	"github.com/specdeck/specdeck/internal/openspec"
	"github.com/specdeck/specdeck/internal/pkgmgr"
	"github.com/specdeck/specdeck/internal/ui/styles"
	"github.com/specdeck/specdeck/internal/ui/text"
)

// StatusPanel shows the probed environment: the discovered project,
// the spec CLI, and the host package managers.
type StatusPanel struct {
	width  int
	height int

	project     *git.Project
	discoverErr *backend.Error
	cli         openspec.Status
	cliProbed   bool
	managers    []pkgmgr.ManagerStatus
	selected    int
}

func NewStatusPanel() StatusPanel {
	return StatusPanel{}
}

func (s *StatusPanel) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *StatusPanel) SetProject(p *git.Project, err *backend.Error) {
	s.project = p
	s.discoverErr = err
}

func (s *StatusPanel) SetCLI(st openspec.Status) {
	s.cli = st
	s.cliProbed = true
}

func (s *StatusPanel) SetManagers(ms []pkgmgr.ManagerStatus) {
	s.managers = ms
	if s.selected >= len(ms) {
		s.selected = 0
	}
}

// CycleManager advances the selected manager round-robin.
func (s *StatusPanel) CycleManager() {
	if len(s.managers) == 0 {
		return
	}
	s.selected = (s.selected + 1) % len(s.managers)
}

// SelectedManager returns the name of the currently selected manager,
// or "" when none were probed yet.
func (s *StatusPanel) SelectedManager() string {
	if s.selected >= len(s.managers) {
		return ""
	}
	return s.managers[s.selected].Name
}

func (s StatusPanel) View() string {
	label := func(v string) string {
		return styles.TextSecondaryStyle.Render(text.PadRight(v, 10))
	}

	var rows []string
	rows = append(rows, styles.TitleStyle.Render("Environment"))

	switch {
	case s.discoverErr != nil:
		rows = append(rows, label("project")+styles.ErrorStyle.Render(s.discoverErr.Message))
	case s.project != nil:
		marker := styles.WarningStyle.Render("no specs")
		if s.project.OpenspecPresent {
			marker = styles.SuccessStyle.Render("specs ✓")
		}
		rows = append(rows, label("project")+
			styles.TextPrimaryStyle.Render(s.project.RepoName)+"  "+marker)
		rows = append(rows, label("")+styles.TextDimStyle.Render(text.Truncate(s.project.RepoPath, s.width-14)))
	default:
		rows = append(rows, label("project")+styles.TextDimStyle.Render("probing…"))
	}

	switch {
	case !s.cliProbed:
		rows = append(rows, label("cli")+styles.TextDimStyle.Render("probing…"))
	case s.cli.Available:
		v := s.cli.Version
		if v == "" {
			v = "installed"
		}
		rows = append(rows, label("cli")+styles.SuccessStyle.Render(v))
	default:
		rows = append(rows, label("cli")+styles.ErrorStyle.Render("not installed"))
	}

	var mgrCells []string
	for i, m := range s.managers {
		cell := m.Name
		if m.Installed {
			cell += " " + m.Version
		}
		style := lipgloss.NewStyle().Foreground(styles.InstalledColor(m.Installed))
		rendered := style.Render(cell)
		if i == s.selected {
			rendered = styles.SelectedRowStyle.Render(" " + rendered + " ")
		} else {
			rendered = " " + rendered + " "
		}
		mgrCells = append(mgrCells, rendered)
	}
	if len(mgrCells) == 0 {
		rows = append(rows, label("managers")+styles.TextDimStyle.Render("probing…"))
	} else {
		rows = append(rows, label("managers")+lipgloss.JoinHorizontal(lipgloss.Top, mgrCells...))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderUnfocused).
		Width(s.width - 2)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Summary returns a short plain-text description of the status, used
// by headless output and tests.
func (s StatusPanel) Summary() string {
	if s.discoverErr != nil {
		return fmt.Sprintf("project: %s", s.discoverErr.Code)
	}
	if s.project == nil {
		return "project: unknown"
	}
	return fmt.Sprintf("project: %s (specs: %v)", s.project.RepoName, s.project.OpenspecPresent)
}
