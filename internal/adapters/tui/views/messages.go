package views

import "dailylog/internal/application/commands"

// Messages for view switching
type SwitchToBrowserMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToSearchMsg struct{}

// SwitchToAddMsg opens the add-item form prefilled with Date (YYYY-MM-DD)
type SwitchToAddMsg struct {
	Date string
}

// SwitchToDetailMsg shows one day in the detail view
type SwitchToDetailMsg struct {
	Day commands.DayOverview
}

// OpenEditorMsg requests opening the year document at the heading of Date
type OpenEditorMsg struct {
	Year int
	Date string
}

// OpenObsidianMsg requests opening the year document in Obsidian at Heading
type OpenObsidianMsg struct {
	Year    int
	Heading string
}

// DocumentChangedMsg reports that a year document changed on disk
type DocumentChangedMsg struct {
	Year int
}

// DaysRefreshedMsg is sent after the day list of Year was (re)loaded
type DaysRefreshedMsg struct {
	Year int
}

// AddSuccessMsg indicates an item was added
type AddSuccessMsg struct {
	Date    string
	Message string
}

// AddErrMsg indicates an error while adding an item
type AddErrMsg struct {
	Err error
}

// SearchSelectMsg is sent when a search result is selected
type SearchSelectMsg struct {
	Hit commands.SearchHit
}

// StatusMsg carries a message for the day list status line
type StatusMsg struct {
	Text  string
	IsErr bool
}
