package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorGreenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	ColorRedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	ColorYellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	ColorBlueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF")).Bold(true)
	ColorCyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))
	ColorGrayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	// Outcome-specific styles
	SucceededStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	HandledStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true)
	PropagatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")).Bold(true)
	CleanupStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))

	// Layout styles
	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Underline(true)

	ScenarioBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#5F5FFF")).
				PaddingLeft(2).
				PaddingRight(2).
				MarginBottom(1)
)

// Icons
const (
	IconSucceeded  = "✓"
	IconHandled    = "◉"
	IconPropagated = "✗"
	IconCleanup    = "⟳"
	IconScenario   = "⊚"
)

// Color wrapper functions
func Green(s string) string {
	return ColorGreenStyle.Render(s)
}

func Red(s string) string {
	return ColorRedStyle.Render(s)
}

func Yellow(s string) string {
	return ColorYellowStyle.Render(s)
}

func Blue(s string) string {
	return ColorBlueStyle.Render(s)
}

func Cyan(s string) string {
	return ColorCyanStyle.Render(s)
}

func Gray(s string) string {
	return ColorGrayStyle.Render(s)
}

// Layout rendering functions
func Section(text string) string {
	return SectionStyle.Render(text)
}

func ScenarioBox(text string) string {
	return ScenarioBoxStyle.Render(text)
}
