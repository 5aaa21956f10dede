package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dailylog/internal/adapters/tui/styles"
	"dailylog/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("데일리로그 Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Days"))
	b.WriteString("\n")
	for _, k := range []key.Binding{DaysKeys.Up, DaysKeys.Down, DaysKeys.PageUp, DaysKeys.PageDown,
		DaysKeys.PrevYear, DaysKeys.NextYear, DaysKeys.Today, DaysKeys.Reload} {
		b.WriteString(helpLine(k))
	}
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Actions"))
	b.WriteString("\n")
	for _, k := range []key.Binding{DaysKeys.Enter, DaysKeys.Add, DaysKeys.Yank, DaysKeys.Edit,
		DaysKeys.Obsidian, DaysKeys.Search, DetailKeys.Raw} {
		b.WriteString(helpLine(k))
	}
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine(DaysKeys.Help))
	b.WriteString(helpLine(DaysKeys.Quit))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Categories"))
	b.WriteString("\n")
	for _, c := range domain.Categories {
		b.WriteString("  ")
		b.WriteString(styles.CategoryHeading(c))
		b.WriteString(styles.MutedText.Render("  alias: " + c.Alias()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(k key.Binding) string {
	h := k.Help()
	return "  " + styles.HelpKey.Render(padRight(h.Key, 12)) + styles.HelpDesc.Render(h.Desc) + "\n"
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
