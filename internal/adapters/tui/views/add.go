package views

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dailylog/internal/adapters/tui/styles"
	"dailylog/internal/application/commands"
	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

const (
	fieldItem = iota
	fieldCategory
	fieldDate
)

// AddModel is the form that appends one item to a day
type AddModel struct {
	ViewState

	store ports.LogStore
	now   func() time.Time
	form  *InputForm

	// CopyLine copies the inserted line to the clipboard after a successful add
	CopyLine bool
}

// NewAddModel creates a new add-item form
func NewAddModel(store ports.LogStore, now func() time.Time) *AddModel {
	if now == nil {
		now = time.Now
	}

	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = c.String()
	}

	item := NewInputField("Item", "what happened? [[links]] welcome", 0)
	item.Input.Width = 60
	date := NewInputField("Date", "today, yesterday, YYYY-MM-DD or MM-DD", 10)

	return &AddModel{
		store: store,
		now:   now,
		form:  NewInputForm(item, NewOptionField("Category", names), date),
	}
}

// Reset clears the form and prefills the date
func (m *AddModel) Reset(date string) {
	m.ClearMessage()
	m.form.Reset()
	m.form.SetValue(fieldDate, date)
}

// SetCategory preselects a category by name or alias
func (m *AddModel) SetCategory(name string) {
	if c, err := domain.ParseCategory(name); err == nil {
		m.form.SetValue(fieldCategory, c.String())
	}
}

// Init initializes the form
func (m *AddModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the form
func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case AddErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.submit()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// Command builds the add command from the current form values
func (m *AddModel) Command() *commands.AddItemCommand {
	cmd := commands.NewAddItemCommand(m.store,
		m.form.Value(fieldDate),
		m.form.Value(fieldCategory),
		m.form.Value(fieldItem),
	)
	cmd.Now = m.now
	return cmd
}

func (m *AddModel) submit() tea.Cmd {
	cmd := m.Command()
	if err := cmd.Validate(); err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}

	copyLine := m.CopyLine
	return func() tea.Msg {
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return AddErrMsg{Err: err}
		}
		message := result.Message
		if copyLine {
			if err := clipboard.WriteAll(result.Line); err == nil {
				message += " (copied)"
			}
		}
		return AddSuccessMsg{Date: domain.FormatDate(result.Date), Message: message}
	}
}

// View renders the form
func (m *AddModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Add item"))
	b.WriteString("\n\n")

	for i := range m.form.Fields {
		b.WriteString(m.form.RenderField(i))
		b.WriteString("\n\n")
	}

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}

	b.WriteString(m.form.RenderHelp("add"))

	return styles.App.Render(b.String())
}
