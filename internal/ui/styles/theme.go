package styles

import "github.com/charmbracelet/lipgloss"

// Common reusable styles built from the color tokens.
var (
	TextPrimaryStyle   = lipgloss.NewStyle().Foreground(TextPrimary)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(TextSecondary)
	TextDimStyle       = lipgloss.NewStyle().Foreground(TextDim)
	TitleStyle         = lipgloss.NewStyle().Foreground(TitleText).Bold(true)
	SelectedRowStyle   = lipgloss.NewStyle().Background(SelectedRowBg)

	KeybindKeyStyle   = lipgloss.NewStyle().Foreground(KeybindKey)
	KeybindLabelStyle = lipgloss.NewStyle().Foreground(KeybindLabel)

	SuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccess)
	ErrorStyle   = lipgloss.NewStyle().Foreground(StatusError)
	WarningStyle = lipgloss.NewStyle().Foreground(StatusWarning)
	RunningStyle = lipgloss.NewStyle().Foreground(StatusRunning)

	StderrStyle = lipgloss.NewStyle().Foreground(StderrText)
)
