package tui

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dailylog/internal/adapters/tui/views"
	"dailylog/internal/adapters/watcher"
	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewDays ViewState = iota
	ViewDetail
	ViewAdd
	ViewSearch
	ViewHelp
)

// Options configures the optional collaborators of the App
type Options struct {
	Editor   ports.EditorOpener
	Obsidian ports.ObsidianOpener
	// Changes delivers document changes; nil disables live reload
	Changes <-chan watcher.Event
	Now     func() time.Time
	// CopyOnAdd copies every added line to the clipboard
	CopyOnAdd bool
}

// App is the main TUI application model
type App struct {
	store ports.LogStore
	opts  Options

	state    ViewState
	returnTo ViewState
	days     *views.DaysModel
	detail   *views.DetailModel
	add      *views.AddModel
	search   *views.SearchModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(store ports.LogStore, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	add := views.NewAddModel(store, opts.Now)
	add.CopyLine = opts.CopyOnAdd

	return &App{
		store:  store,
		opts:   opts,
		state:  ViewDays,
		days:   views.NewDaysModel(store, opts.Now),
		detail: views.NewDetailModel(),
		add:    add,
		search: views.NewSearchModel(store),
		help:   views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.days.Init(), waitForChange(a.opts.Changes))
}

// waitForChange turns the next watcher event into a message
func waitForChange(ch <-chan watcher.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return views.DocumentChangedMsg{Year: ev.Year}
	}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.days.SetSize(msg.Width, msg.Height)
		a.detail.SetSize(msg.Width, msg.Height)
		a.add.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	// View switching messages
	case views.SwitchToBrowserMsg:
		if a.state == ViewAdd && a.returnTo == ViewDetail {
			a.state = ViewDetail
			return a, nil
		}
		a.state = ViewDays
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToSearchMsg:
		a.search.Reset()
		a.state = ViewSearch
		return a, a.search.Init()

	case views.SwitchToAddMsg:
		a.returnTo = a.state
		a.add.Reset(msg.Date)
		a.state = ViewAdd
		return a, a.add.Init()

	case views.SwitchToDetailMsg:
		a.detail.SetDay(a.days.Year(), msg.Day)
		a.state = ViewDetail
		return a, nil

	// Add form results
	case views.AddSuccessMsg:
		a.state = a.returnTo
		if a.state != ViewDetail {
			a.state = ViewDays
		}
		a.days.SetMessage(msg.Message, false)
		a.detail.SetMessage(msg.Message, false)
		return a, a.days.ReloadAt(yearOf(msg.Date), msg.Date)

	case views.SearchSelectMsg:
		a.state = ViewDays
		return a, a.days.ReloadAt(yearOf(msg.Hit.Date), msg.Hit.Date)

	case views.DaysRefreshedMsg:
		if a.state == ViewDetail {
			if day, ok := a.days.Lookup(a.detail.Date()); ok {
				message, isErr := a.detail.Message, a.detail.MessageErr
				a.detail.SetDay(msg.Year, day)
				a.detail.SetMessage(message, isErr)
			}
		}
		return a, nil

	case views.DocumentChangedMsg:
		var reload tea.Cmd
		if msg.Year == a.days.Year() {
			reload = a.days.Reload()
		}
		return a, tea.Batch(reload, waitForChange(a.opts.Changes))

	// External openers
	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Year, msg.Date)

	case editorFinishedMsg:
		if msg.err != nil {
			return a, a.status(fmt.Sprintf("editor: %v", msg.err), true)
		}
		return a, a.days.Reload()

	case views.OpenObsidianMsg:
		return a, a.openObsidian(msg.Year, msg.Heading)

	case views.StatusMsg:
		if a.state == ViewDetail {
			_, cmd := a.detail.Update(msg)
			return a, cmd
		}
		_, cmd := a.days.Update(msg)
		return a, cmd
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewDays:
		_, cmd = a.days.Update(msg)
	case ViewDetail:
		_, cmd = a.detail.Update(msg)
	case ViewAdd:
		_, cmd = a.add.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	// background loads of the day list arrive while another view is shown
	if _, isKey := msg.(tea.KeyMsg); !isKey && a.state != ViewDays {
		var daysCmd tea.Cmd
		_, daysCmd = a.days.Update(msg)
		cmd = tea.Batch(cmd, daysCmd)
	}

	return a, cmd
}

func (a *App) status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return views.StatusMsg{Text: text, IsErr: isErr} }
}

type editorFinishedMsg struct{ err error }

// openEditor suspends the TUI and opens the year document at the heading of date
func (a *App) openEditor(year int, date string) tea.Cmd {
	if a.opts.Editor == nil {
		return a.status("no editor configured", true)
	}

	path := a.store.Path(year)
	line := 0
	if date != "" {
		line = headingLine(a.store, year, date)
	}

	cmd, err := a.opts.Editor.Command(path, line)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (a *App) openObsidian(year int, heading string) tea.Cmd {
	if a.opts.Obsidian == nil {
		return a.status("Obsidian opener not configured", true)
	}
	path := a.store.Path(year)
	return func() tea.Msg {
		if err := a.opts.Obsidian.OpenFile(path, heading); err != nil {
			return views.StatusMsg{Text: fmt.Sprintf("obsidian: %v", err), IsErr: true}
		}
		return views.StatusMsg{Text: "Opened in Obsidian"}
	}
}

// headingLine returns the 1-based line of the heading for date, or 0
func headingLine(store ports.LogStore, year int, date string) int {
	d, err := domain.ParseISODate(date)
	if err != nil {
		return 0
	}
	content, err := store.Read(year)
	if err != nil {
		return 0
	}
	line, _ := domain.DayLine(content, d)
	return line
}

// yearOf returns the year of a YYYY-MM-DD date, or 0 when it does not parse
func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return y
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewDetail:
		return a.detail.View()
	case ViewAdd:
		return a.add.View()
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.days.View()
	}
}
