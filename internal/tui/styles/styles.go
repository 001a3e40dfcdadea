package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - all meet WCAG AA contrast (4.5:1) on dark surfaces
	PrimaryColor = lipgloss.Color("#A78BFA") // Purple
	GreenColor   = lipgloss.Color("#10B981") // Green
	RedColor     = lipgloss.Color("#F87171") // Red
	YellowColor  = lipgloss.Color("#FBBF24") // Yellow
	MutedColor   = lipgloss.Color("#9CA3AF") // Gray
	TextColor    = lipgloss.Color("#F9FAFB") // Light text
	BorderColor  = lipgloss.Color("#6B7280") // Gray

	// Convenience styles for colors
	Primary = lipgloss.NewStyle().Foreground(PrimaryColor)
	Muted   = lipgloss.NewStyle().Foreground(MutedColor)
	Text    = lipgloss.NewStyle().Foreground(TextColor)

	// Labelling status styles
	LabelIn    = lipgloss.NewStyle().Bold(true).Foreground(GreenColor)
	LabelOut   = lipgloss.NewStyle().Foreground(RedColor)
	LabelUndec = lipgloss.NewStyle().Foreground(YellowColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	Selected = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 1)

	Unselected = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1)

	// Content area
	DetailBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)
)
