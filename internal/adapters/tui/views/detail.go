package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dailylog/internal/adapters/tui/styles"
	"dailylog/internal/application/commands"
)

// DetailKeyMap defines key bindings for the day detail view
type DetailKeyMap struct {
	Back     key.Binding
	Add      key.Binding
	Yank     key.Binding
	Edit     key.Binding
	Obsidian key.Binding
	Raw      key.Binding
}

var DetailKeys = DetailKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "q", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yank"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Obsidian: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "obsidian"),
	),
	Raw: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "markdown"),
	),
}

// DetailModel shows one day, scrollable
type DetailModel struct {
	ViewState

	viewport viewport.Model
	day      commands.DayOverview
	year     int
	raw      bool
}

// NewDetailModel creates a new detail view
func NewDetailModel() *DetailModel {
	return &DetailModel{
		viewport: viewport.New(0, 0),
	}
}

// SetDay replaces the day being shown
func (m *DetailModel) SetDay(year int, day commands.DayOverview) {
	m.year = year
	m.day = day
	m.ClearMessage()
	m.refresh()
}

// Date returns the date being shown
func (m *DetailModel) Date() string {
	return m.day.Date
}

func (m *DetailModel) refresh() {
	if m.day.Entry == nil {
		m.viewport.SetContent(styles.MutedText.Render("(no entry)"))
		return
	}
	if m.raw {
		m.viewport.SetContent(m.day.Entry.Raw)
	} else {
		m.viewport.SetContent(RenderDay(m.day.Entry))
	}
}

// Init initializes the detail view
func (m *DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view
func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case StatusMsg:
		m.SetMessage(msg.Text, msg.IsErr)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, DetailKeys.Back):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }

		case key.Matches(msg, DetailKeys.Add):
			return m, func() tea.Msg { return SwitchToAddMsg{Date: m.day.Date} }

		case key.Matches(msg, DetailKeys.Yank):
			return m, YankDay(m.day)

		case key.Matches(msg, DetailKeys.Edit):
			return m, func() tea.Msg { return OpenEditorMsg{Year: m.year, Date: m.day.Date} }

		case key.Matches(msg, DetailKeys.Obsidian):
			return m, func() tea.Msg {
				return OpenObsidianMsg{Year: m.year, Heading: DayHeadingText(m.day.Entry)}
			}

		case key.Matches(msg, DetailKeys.Raw):
			m.raw = !m.raw
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// SetSize updates the view dimensions and the viewport
func (m *DetailModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = max(width-4, 10)
	m.viewport.Height = max(height-8, 3)
}

// View renders the detail view
func (m *DetailModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(fmt.Sprintf("데일리로그 %d", m.year)))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	if m.viewport.TotalLineCount() > m.viewport.Height {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)))
		b.WriteString("  ")
	}
	b.WriteString(RenderHelpLine(DetailKeys.Back, DetailKeys.Add, DetailKeys.Yank,
		DetailKeys.Edit, DetailKeys.Obsidian, DetailKeys.Raw))

	return styles.App.Render(b.String())
}
