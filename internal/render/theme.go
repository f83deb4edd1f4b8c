package render

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

// Palette.
var (
	Primary   = lipgloss.Color("#8B5CF6")
	Secondary = lipgloss.Color("#14B8A6")
	Accent    = lipgloss.Color("#F97316")
	Success   = lipgloss.Color("#22C55E")
	Warning   = lipgloss.Color("#EAB308")
	Danger    = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	Border    = lipgloss.Color("#334155")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	dimStyle = lipgloss.NewStyle().
			Foreground(TextDim)

	bodyStyle = lipgloss.NewStyle().
			Foreground(Text)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	projectBadge = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	linkStyle = lipgloss.NewStyle().
			Foreground(TextDim).
			Underline(true)
)

// difficultyStyle colors a difficulty level.
func difficultyStyle(d skillgraph.Difficulty) lipgloss.Style {
	switch d {
	case skillgraph.Beginner:
		return lipgloss.NewStyle().Foreground(Success)
	case skillgraph.Advanced:
		return lipgloss.NewStyle().Foreground(Danger)
	default:
		return lipgloss.NewStyle().Foreground(Warning)
	}
}
