package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mvantaa/pocketscan/internal/version"
)

// Application branding constants
const (
	AppName   = "POCKETSCAN SIMULATOR"
	GitHubURL = "github.com/mvantaa/pocketscan"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Color palette
var (
	// LCD colors approximate a green character display
	LCDTextColor   = lipgloss.Color("#9EFF9E")
	LCDPanelColor  = lipgloss.Color("#10350F")
	LCDBorderColor = lipgloss.Color("#2E7D32")

	TextColor   = lipgloss.Color("#FFFFFF")
	SubtleColor = lipgloss.Color("#626262")
	AccentColor = lipgloss.Color("#43BF6D")
)

// Common styles
var (
	// Title style for the header line
	TitleStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true).
			MarginBottom(1)

	// The simulated display panel: fixed-width rows inside a double
	// border, styled like a backlit character LCD
	LCDStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(LCDBorderColor).
			Foreground(LCDTextColor).
			Background(LCDPanelColor).
			Bold(true).
			Padding(0, 1)

	// Label row beneath the display naming the physical buttons
	ButtonLabelStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				MarginTop(1)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginTop(1)
)

// BuildHeaderContent creates the header with app name and repository URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}
