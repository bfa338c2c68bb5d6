package ui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/specdeck/specdeck/internal/backend"
	"github.com/specdeck/specdeck/internal/config"
)

const waitDuration = 3 * time.Second

// appAdapter wraps the App (value receiver model) into a model that
// suppresses Init() side effects (environment probes spawn real
// processes) so teatest runs stay hermetic.
type appAdapter struct {
	app App
}

func newTestAppAdapter(tb testing.TB) *appAdapter {
	tb.Helper()
	cfg := config.DefaultConfig()
	cfg.Update.DisableCheck = true
	b, err := backend.New(&cfg, nil)
	if err != nil {
		tb.Fatalf("backend.New: %v", err)
	}
	a := NewApp(&cfg, b, tb.(*testing.T).TempDir(), nil)
	return &appAdapter{app: a}
}

func (a *appAdapter) Init() tea.Cmd {
	// Skip the real Init() which probes git, the CLI, and package managers.
	return nil
}

func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.app.Update(msg)
	a.app = m.(App)
	return a, cmd
}

func (a *appAdapter) View() string {
	return a.app.View()
}

// waitForContains waits until the output contains the given substring.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool { return bytes.Contains(bts, []byte(substr)) },
		teatest.WithDuration(waitDuration),
	)
}
