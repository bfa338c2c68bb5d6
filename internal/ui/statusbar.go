package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/specdeck/specdeck/internal/ui/styles"
	"github.com/specdeck/specdeck/internal/ui/text"
)

const flashDurationVal = 5 * time.Second

var statusSpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

// FlashDuration returns how long the status bar flash is shown.
func FlashDuration() time.Duration { return flashDurationVal }

// FlashLevel controls the icon and color of a status bar flash message.
type FlashLevel int

const (
	FlashInfo    FlashLevel = iota // blue ●
	FlashSuccess                   // green ✓
	FlashWarning                   // yellow ⚠
	FlashError                     // red ✗
)

type StatusBar struct {
	width      int
	flash      string
	flashLevel FlashLevel
	running    bool
	tickStep   int
}

func NewStatusBar() StatusBar {
	return StatusBar{}
}

func (s *StatusBar) SetSize(width int) { s.width = width }

func (s *StatusBar) SetRunning(running bool) { s.running = running }

func (s *StatusBar) Tick() { s.tickStep++ }

func (s *StatusBar) SetFlash(msg string, level FlashLevel) {
	s.flash = msg
	s.flashLevel = level
}

func (s *StatusBar) ClearFlash() { s.flash = "" }

func (s StatusBar) View() string {
	sep := styles.TextDimStyle.Render(" │ ")

	appName := "specdeck " + Version
	if s.running {
		frame := statusSpinnerFrames[s.tickStep%len(statusSpinnerFrames)]
		appName = styles.RunningStyle.Render(frame) + " " + appName
	}
	left := styles.TextSecondaryStyle.Render(appName)

	hints := keybindHints([][2]string{
		{"Tab", "manager"},
		{"i", "install"},
		{"n", "init"},
		{"c", "copy"},
		{"r", "refresh"},
		{"q", "quit"},
	})

	line := left + sep + hints
	if s.flash != "" {
		var icon string
		var style lipgloss.Style
		switch s.flashLevel {
		case FlashSuccess:
			icon, style = "✓", styles.SuccessStyle
		case FlashWarning:
			icon, style = "⚠", styles.WarningStyle
		case FlashError:
			icon, style = "✗", styles.ErrorStyle
		default:
			icon, style = "●", styles.RunningStyle
		}
		line += sep + style.Render(icon+" "+s.flash)
	}

	return text.Truncate(text.PadRight(line, s.width), s.width)
}

func keybindHints(binds [][2]string) string {
	out := ""
	for i, b := range binds {
		if i > 0 {
			out += "  "
		}
		out += styles.KeybindKeyStyle.Render(b[0]) + styles.KeybindLabelStyle.Render(" "+b[1])
	}
	return out
}
