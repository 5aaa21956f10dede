package styles

import (
	"github.com/charmbracelet/lipgloss"

	"dailylog/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Category colors
	CategoryWork     = lipgloss.Color("#6366F1") // Indigo
	CategoryPersonal = lipgloss.Color("#EC4899") // Pink
	CategoryScrap    = lipgloss.Color("#F97316") // Orange
	CategoryIdea     = lipgloss.Color("#10B981") // Green

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Day list
	DayDate = lipgloss.NewStyle().
		Bold(true)

	DayEmpty = lipgloss.NewStyle().
			Foreground(Muted)

	DaySelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	DayToday = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	WeekdayMismatch = lipgloss.NewStyle().
			Foreground(Warning)

	// Day detail
	DayHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	Item = lipgloss.NewStyle()

	ItemTime = lipgloss.NewStyle().
			Foreground(Muted)

	Link = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#60A5FA")). // Blue
		Underline(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Search
	SearchMatch = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// CategoryColor returns the color for a category
func CategoryColor(c domain.Category) lipgloss.Color {
	switch c {
	case domain.CategoryWork:
		return CategoryWork
	case domain.CategoryPersonal:
		return CategoryPersonal
	case domain.CategoryScrap:
		return CategoryScrap
	case domain.CategoryIdea:
		return CategoryIdea
	default:
		return Primary
	}
}

// CategoryHeading renders a category name in its color
func CategoryHeading(c domain.Category) string {
	return lipgloss.NewStyle().Bold(true).Foreground(CategoryColor(c)).Render(c.String())
}
