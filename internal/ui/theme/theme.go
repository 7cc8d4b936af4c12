package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — dark editor tones, close to what most terminals run
var (
	Primary   = lipgloss.Color("#38BDF8") // Sky Blue
	Secondary = lipgloss.Color("#A78BFA") // Violet
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#FB7185") // Rose
	Text      = lipgloss.Color("#E2E8F0") // Light Slate
	TextDim   = lipgloss.Color("#64748B") // Slate
	BgDark    = lipgloss.Color("#0B1120") // Near Black
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Difficulty colors
var (
	Easy   = lipgloss.Color("#4ADE80") // Green
	Medium = lipgloss.Color("#FBBF24") // Amber
	Hard   = lipgloss.Color("#FB7185") // Rose
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	CodeBlock = lipgloss.NewStyle().
			Background(BgDark).
			Border(lipgloss.NormalBorder()).
			BorderForeground(Border).
			Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Pass = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Fail = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// DifficultyStyle returns the style for a difficulty label.
func DifficultyStyle(d string) lipgloss.Style {
	switch d {
	case "easy":
		return lipgloss.NewStyle().Foreground(Easy)
	case "medium":
		return lipgloss.NewStyle().Foreground(Medium)
	case "hard":
		return lipgloss.NewStyle().Foreground(Hard)
	default:
		return lipgloss.NewStyle().Foreground(TextDim)
	}
}
