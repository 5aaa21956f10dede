package views

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dailylog/internal/adapters/tui/styles"
	"dailylog/internal/application/commands"
	"dailylog/internal/ports"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Copy   key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "go to day"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy item"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// maxSearchResults caps the rows rendered; the rest is summarized
const maxSearchResults = 10

// SearchModel is the model for the search view
type SearchModel struct {
	ViewState

	store   ports.LogStore
	input   textinput.Model
	results []commands.SearchHit
	cursor  int
}

// NewSearchModel creates a new search view model
func NewSearchModel(store ports.LogStore) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search items and [[links]]..."
	input.Focus()

	return &SearchModel{
		store: store,
		input: input,
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset resets the search view
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.results = nil
	m.cursor = 0
	m.ClearMessage()
	m.input.Focus()
}

type searchResultsMsg struct {
	query   string
	results []commands.SearchHit
	err     error
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case searchResultsMsg:
		// drop results of a query that was typed over
		if msg.query != m.input.Value() {
			return m, nil
		}
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
		}
		m.results = msg.results
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit

		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < min(len(m.results), maxSearchResults)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			if hit, ok := m.Selected(); ok {
				return m, func() tea.Msg { return SearchSelectMsg{Hit: hit} }
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Copy):
			if hit, ok := m.Selected(); ok {
				if err := clipboard.WriteAll(hit.Line); err != nil {
					m.SetMessage(fmt.Sprintf("clipboard: %v", err), true)
				} else {
					m.SetMessage("Copied to clipboard", false)
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	query := m.input.Value()
	if utf8.RuneCountInString(strings.TrimSpace(query)) >= commands.MinSearchQuery {
		return m, tea.Batch(cmd, m.search(query))
	}
	m.results = nil
	m.cursor = 0

	return m, cmd
}

func (m *SearchModel) search(query string) tea.Cmd {
	return func() tea.Msg {
		search := commands.NewSearchCommand(m.store, strings.TrimSpace(query))
		results, err := search.Execute(context.Background())
		return searchResultsMsg{query: query, results: results, err: err}
	}
}

// Selected returns the hit under the cursor
func (m *SearchModel) Selected() (commands.SearchHit, bool) {
	if m.cursor >= 0 && m.cursor < len(m.results) {
		return m.results[m.cursor], true
	}
	return commands.SearchHit{}, false
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Search"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		if utf8.RuneCountInString(strings.TrimSpace(m.input.Value())) >= commands.MinSearchQuery {
			b.WriteString(styles.MutedText.Render("No results found"))
		} else {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("Type at least %d characters to search", commands.MinSearchQuery)))
		}
	} else {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d results", len(m.results))))
		b.WriteString("\n\n")

		shown := min(len(m.results), maxSearchResults)
		for i := 0; i < shown; i++ {
			b.WriteString(m.renderResult(m.results[i], i == m.cursor))
			b.WriteString("\n")
		}

		if len(m.results) > maxSearchResults {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("... and %d more", len(m.results)-maxSearchResults)))
		}
	}

	if m.Message != "" {
		b.WriteString("\n\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(SearchKeys.Up, SearchKeys.Down, SearchKeys.Select, SearchKeys.Copy, SearchKeys.Cancel))

	return styles.App.Render(b.String())
}

func (m *SearchModel) renderResult(hit commands.SearchHit, selected bool) string {
	text := fmt.Sprintf("%s [%s] %s", hit.Date, hit.Category, hit.Text)
	if selected {
		return styles.DaySelected.Render(text)
	}
	return styles.MutedText.Render(hit.Date) + " " + styles.CategoryHeading(hit.Category) + " " + hit.Text
}
