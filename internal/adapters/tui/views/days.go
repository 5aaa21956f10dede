package views

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dailylog/internal/adapters/tui/styles"
	"dailylog/internal/application"
	"dailylog/internal/application/commands"
	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

// DaysKeyMap defines key bindings for the day list
type DaysKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	PrevYear key.Binding
	NextYear key.Binding
	Today    key.Binding
	Enter    key.Binding
	Add      key.Binding
	Yank     key.Binding
	Edit     key.Binding
	Obsidian key.Binding
	Search   key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var DaysKeys = DaysKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	PrevYear: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev year"),
	),
	NextYear: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next year"),
	),
	Today: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "today"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "view"),
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
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// chrome is the number of rows taken by the title, status and help lines
const chrome = 9

// DaysModel lists the days of one year document, newest first
type DaysModel struct {
	ViewState

	store ports.LogStore
	now   func() time.Time

	years   []int
	year    int
	days    []commands.DayOverview
	pager   *Paginator
	loaded  bool
	missing bool

	// keep is the date to reselect after a reload
	keep string
}

// NewDaysModel creates a new day list for store
func NewDaysModel(store ports.LogStore, now func() time.Time) *DaysModel {
	if now == nil {
		now = time.Now
	}
	return &DaysModel{
		store: store,
		now:   now,
		pager: NewPaginator(20),
	}
}

type daysLoadedMsg struct {
	years   []int
	year    int
	days    []commands.DayOverview
	missing bool
}

type errMsg struct {
	err error
}

// Init loads the current year
func (m *DaysModel) Init() tea.Cmd {
	return m.load(0)
}

// load reads the day list of year; 0 selects the current year or the latest one on disk
func (m *DaysModel) load(year int) tea.Cmd {
	return func() tea.Msg {
		years, err := m.store.Years()
		if err != nil {
			return errMsg{err}
		}
		if year == 0 {
			year = m.now().Year()
			if !slices.Contains(years, year) && len(years) > 0 {
				year = years[len(years)-1]
			}
		}

		days, err := commands.NewDaysCommand(m.store, year).Execute(context.Background())
		if errors.Is(err, application.ErrNotFound) {
			return daysLoadedMsg{years: years, year: year, missing: true}
		}
		if err != nil {
			return errMsg{err}
		}
		return daysLoadedMsg{years: years, year: year, days: days}
	}
}

// Update handles messages for the day list
func (m *DaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case daysLoadedMsg:
		m.setDays(msg)
		year := m.year
		return m, func() tea.Msg { return DaysRefreshedMsg{Year: year} }

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case StatusMsg:
		m.SetMessage(msg.Text, msg.IsErr)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, DaysKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, DaysKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, DaysKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, DaysKeys.PageUp):
			m.pager.PrevPage()
			return m, nil

		case key.Matches(msg, DaysKeys.PageDown):
			m.pager.NextPage()
			return m, nil

		case key.Matches(msg, DaysKeys.PrevYear):
			if y, ok := m.adjacentYear(-1); ok {
				return m, m.load(y)
			}
			return m, nil

		case key.Matches(msg, DaysKeys.NextYear):
			if y, ok := m.adjacentYear(1); ok {
				return m, m.load(y)
			}
			return m, nil

		case key.Matches(msg, DaysKeys.Today):
			today := domain.FormatDate(m.now())
			if !m.SelectDate(today) {
				m.SetMessage(fmt.Sprintf("No entry for %s", today), false)
			}
			return m, nil

		case key.Matches(msg, DaysKeys.Enter):
			if day, ok := m.Selected(); ok {
				return m, func() tea.Msg { return SwitchToDetailMsg{Day: day} }
			}
			return m, nil

		case key.Matches(msg, DaysKeys.Add):
			date := domain.FormatDate(m.now())
			if day, ok := m.Selected(); ok {
				date = day.Date
			}
			return m, func() tea.Msg { return SwitchToAddMsg{Date: date} }

		case key.Matches(msg, DaysKeys.Yank):
			if day, ok := m.Selected(); ok {
				return m, YankDay(day)
			}
			return m, nil

		case key.Matches(msg, DaysKeys.Edit):
			if day, ok := m.Selected(); ok {
				return m, func() tea.Msg { return OpenEditorMsg{Year: m.year, Date: day.Date} }
			}
			return m, func() tea.Msg { return OpenEditorMsg{Year: m.year} }

		case key.Matches(msg, DaysKeys.Obsidian):
			var heading string
			if day, ok := m.Selected(); ok {
				heading = DayHeadingText(day.Entry)
			}
			return m, func() tea.Msg { return OpenObsidianMsg{Year: m.year, Heading: heading} }

		case key.Matches(msg, DaysKeys.Search):
			return m, func() tea.Msg { return SwitchToSearchMsg{} }

		case key.Matches(msg, DaysKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, DaysKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	return m, nil
}

func (m *DaysModel) setDays(msg daysLoadedMsg) {
	m.years = msg.years
	m.year = msg.year
	m.days = msg.days
	m.missing = msg.missing
	m.loaded = true

	m.pager.Reset()
	m.pager.SetTotal(len(m.days))
	if m.keep != "" {
		m.SelectDate(m.keep)
		m.keep = ""
	}
}

// adjacentYear returns the year document before (dir < 0) or after the current one
func (m *DaysModel) adjacentYear(dir int) (int, bool) {
	i := slices.Index(m.years, m.year)
	if i < 0 {
		// current year has no document yet; step from the closest one
		i, _ = slices.BinarySearch(m.years, m.year)
		if dir > 0 {
			i--
		}
	}
	next := i + dir
	if next < 0 || next >= len(m.years) {
		return 0, false
	}
	return m.years[next], true
}

// Selected returns the day under the cursor
func (m *DaysModel) Selected() (commands.DayOverview, bool) {
	i := m.pager.Cursor()
	if i >= 0 && i < len(m.days) {
		return m.days[i], true
	}
	return commands.DayOverview{}, false
}

// Lookup returns the loaded day for date (YYYY-MM-DD)
func (m *DaysModel) Lookup(date string) (commands.DayOverview, bool) {
	for _, d := range m.days {
		if d.Date == date {
			return d, true
		}
	}
	return commands.DayOverview{}, false
}

// SelectDate moves the cursor to date (YYYY-MM-DD)
func (m *DaysModel) SelectDate(date string) bool {
	return m.pager.Find(func(i int) bool { return m.days[i].Date == date })
}

// Year returns the year being shown
func (m *DaysModel) Year() int {
	return m.year
}

// Reload re-reads the current year and keeps the selection
func (m *DaysModel) Reload() tea.Cmd {
	if day, ok := m.Selected(); ok {
		m.keep = day.Date
	}
	return m.load(m.year)
}

// ReloadAt re-reads year and selects date
func (m *DaysModel) ReloadAt(year int, date string) tea.Cmd {
	m.keep = date
	return m.load(year)
}

// SetSize updates the view dimensions and the page size
func (m *DaysModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(height - chrome)
}

// View renders the day list
func (m *DaysModel) View() string {
	if !m.loaded {
		return styles.App.Render("Loading...")
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render(fmt.Sprintf("데일리로그 %d", m.year)))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.subtitle()))
	b.WriteString("\n\n")

	today := domain.FormatDate(m.now())
	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(m.days[i], i == m.pager.Cursor(), m.days[i].Date == today))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(DaysKeys.Enter, DaysKeys.Add, DaysKeys.Yank, DaysKeys.Edit,
		DaysKeys.Search, DaysKeys.Help, DaysKeys.Quit))

	return styles.App.Render(b.String())
}

func (m *DaysModel) subtitle() string {
	switch {
	case m.missing:
		return fmt.Sprintf("No log for %d: %s", m.year, m.store.Path(m.year))
	case len(m.days) == 0:
		return "No days yet"
	case m.pager.TotalPages() > 1:
		return fmt.Sprintf("%d days · page %d/%d", len(m.days), m.pager.CurrentPage(), m.pager.TotalPages())
	default:
		return fmt.Sprintf("%d days", len(m.days))
	}
}

func (m *DaysModel) renderRow(day commands.DayOverview, selected, today bool) string {
	label := fmt.Sprintf("%s (%s)", day.Date, day.Weekday)

	var row string
	switch {
	case selected:
		row = styles.DaySelected.Render(label)
	case today:
		row = styles.DayToday.Render(label)
	case day.Total() == 0:
		row = styles.DayEmpty.Render(label)
	default:
		row = styles.DayDate.Render(label)
	}

	row += "  " + RenderCounts(day.Counts)
	if day.Links > 0 {
		row += styles.MutedText.Render(fmt.Sprintf("  [[%d]]", day.Links))
	}
	if !day.WeekdayOK {
		row += "  " + styles.WeekdayMismatch.Render("!weekday")
	}
	return row
}

// DayHeadingText returns the heading of a day as written, without the #s
func DayHeadingText(e *domain.DayEntry) string {
	if e == nil {
		return ""
	}
	first, _, _ := strings.Cut(e.Raw, "\n")
	return strings.TrimSpace(strings.TrimLeft(first, "#"))
}

// YankDay copies the raw text of a day to the clipboard
func YankDay(day commands.DayOverview) tea.Cmd {
	return func() tea.Msg {
		if day.Entry == nil {
			return StatusMsg{}
		}
		if err := clipboard.WriteAll(day.Entry.Raw); err != nil {
			return StatusMsg{Text: fmt.Sprintf("clipboard: %v", err), IsErr: true}
		}
		return StatusMsg{Text: fmt.Sprintf("Copied %s to clipboard", day.Date)}
	}
}
