package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/specdeck/specdeck/internal/process"
	"github.com/specdeck/specdeck/internal/ui/styles"
	"github.com/specdeck/specdeck/internal/ui/text"
)

// LogPanel shows the streamed output of the active command. Stdout and
// stderr lines arrive interleaved and are rendered in arrival order,
// with stderr tinted so failures stand out.
type LogPanel struct {
	viewport viewport.Model
	lines    []string
	raw      []string
	maxLines int
	width    int
	height   int
	title    string
	follow   bool
	keys     KeyMap
}

func NewLogPanel(maxLines int) LogPanel {
	vp := viewport.New(0, 0)
	return LogPanel{
		viewport: vp,
		maxLines: maxLines,
		title:    "Output",
		follow:   true,
		keys:     DefaultKeyMap(),
	}
}

// Append adds one output event to the panel, trimming the oldest lines
// once the cap is reached.
func (l *LogPanel) Append(ev process.Event) {
	line := ev.Line
	rendered := line
	if ev.Stream == process.StreamStderr {
		rendered = styles.StderrStyle.Render(line)
	}
	l.raw = append(l.raw, line)
	l.lines = append(l.lines, rendered)
	if l.maxLines > 0 && len(l.lines) > l.maxLines {
		drop := len(l.lines) - l.maxLines
		l.lines = l.lines[drop:]
		l.raw = l.raw[drop:]
	}
	atBottom := l.viewport.AtBottom()
	l.viewport.SetContent(strings.Join(l.lines, "\n"))
	if l.follow || atBottom {
		l.viewport.GotoBottom()
	}
}

// Notice adds a line produced by the app itself rather than a child
// process, e.g. "install finished" banners.
func (l *LogPanel) Notice(line string) {
	l.raw = append(l.raw, line)
	l.lines = append(l.lines, styles.TextSecondaryStyle.Render(line))
	l.viewport.SetContent(strings.Join(l.lines, "\n"))
	if l.follow {
		l.viewport.GotoBottom()
	}
}

// Clear drops the buffered output, used when a new command starts.
func (l *LogPanel) Clear(title string) {
	l.lines = nil
	l.raw = nil
	l.title = title
	l.follow = true
	l.viewport.SetContent("")
	l.viewport.GotoTop()
}

// Text returns the unstyled buffered output for clipboard copy.
func (l *LogPanel) Text() string {
	return strings.Join(l.raw, "\n")
}

func (l *LogPanel) SetSize(width, height int) {
	l.width = width
	l.height = height
	innerW := width - 2
	innerH := height - 3
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}
	l.viewport.Width = innerW
	l.viewport.Height = innerH
	l.viewport.SetContent(strings.Join(l.lines, "\n"))
	if l.follow {
		l.viewport.GotoBottom()
	}
}

func (l LogPanel) Update(msg tea.Msg) (LogPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, l.keys.Up):
			l.follow = false
			l.viewport.SetYOffset(l.viewport.YOffset - 1)
			return l, nil
		case key.Matches(msg, l.keys.Down):
			l.viewport.SetYOffset(l.viewport.YOffset + 1)
			if l.viewport.AtBottom() {
				l.follow = true
			}
			return l, nil
		case key.Matches(msg, l.keys.Bottom):
			l.follow = true
			l.viewport.GotoBottom()
			return l, nil
		}
	}
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return l, cmd
}

func (l LogPanel) View() string {
	title := styles.TitleStyle.Render(text.Truncate(l.title, l.width-4))
	if !l.follow && !l.viewport.AtBottom() {
		title += styles.TextDimStyle.Render(" (scrolled, G to follow)")
	}
	body := l.viewport.View()
	if len(l.lines) == 0 {
		body = styles.TextDimStyle.Render("No output yet.")
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderUnfocused).
		Width(l.width - 2).
		Height(l.height - 2)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}
