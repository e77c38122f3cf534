package cli

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	Primary      = lipgloss.Color("#7C3AED") // Purple
	ErrorColor   = lipgloss.Color("#EF4444") // Red
	TextMuted    = lipgloss.Color("#9CA3AF") // Gray
	TextDim      = lipgloss.Color("#6B7280") // Darker gray
	SpotifyGreen = lipgloss.Color("#1DB954")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SpotifyGreen)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextDim)

	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor)
)

// Section renders a section heading.
func Section(title string) string {
	return TitleStyle.Render(title)
}
