package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dailylog/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Tab    key.Binding
	Prev   key.Binding
	Next   key.Binding
}

// DefaultInputFormKeys returns the default input form key bindings
var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "previous option"),
	),
	Next: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "next option"),
	),
}

// InputField represents a single input field with label and textinput.
// A field with Options cycles through them instead of taking free text.
type InputField struct {
	Label   string
	Input   textinput.Model
	Options []string
	option  int
}

// InputForm manages multiple text input fields with focus handling
type InputForm struct {
	Fields       []InputField
	FocusedField int
	Keys         InputFormKeyMap
}

// NewInputForm creates a new input form with the given fields
func NewInputForm(fields ...InputField) *InputForm {
	form := &InputForm{
		Fields:       fields,
		FocusedField: 0,
		Keys:         DefaultInputFormKeys,
	}
	// Focus the first field
	if len(fields) > 0 {
		form.Fields[0].Input.Focus()
	}
	return form
}

// NewInputField creates a new input field with the given label and placeholder
func NewInputField(label, placeholder string, charLimit int) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	return InputField{
		Label: label,
		Input: input,
	}
}

// NewOptionField creates a field that cycles through options, starting at the first
func NewOptionField(label string, options []string) InputField {
	field := NewInputField(label, "", 0)
	field.Options = options
	if len(options) > 0 {
		field.Input.SetValue(options[0])
	}
	return field
}

// Init returns the blink command for the focused input
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the input form.
// Returns (handled, cmd) where handled is true if the key was processed.
func (f *InputForm) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, f.Keys.Tab):
			f.NextField()
			return true, nil
		case key.Matches(msg, f.Keys.Prev):
			return f.cycle(-1), nil
		case key.Matches(msg, f.Keys.Next):
			return f.cycle(1), nil
		}
	}

	if f.FocusedField < 0 || f.FocusedField >= len(f.Fields) {
		return false, nil
	}
	field := &f.Fields[f.FocusedField]
	if len(field.Options) > 0 {
		if _, ok := msg.(tea.KeyMsg); ok {
			// option fields ignore typing
			return true, nil
		}
	}

	var cmd tea.Cmd
	field.Input, cmd = field.Input.Update(msg)
	return false, cmd
}

// cycle moves an option field of the focused field by step
func (f *InputForm) cycle(step int) bool {
	if f.FocusedField < 0 || f.FocusedField >= len(f.Fields) {
		return false
	}
	field := &f.Fields[f.FocusedField]
	n := len(field.Options)
	if n == 0 {
		return false
	}
	field.option = ((field.option+step)%n + n) % n
	field.Input.SetValue(field.Options[field.option])
	return true
}

// NextField moves focus to the next field
func (f *InputForm) NextField() {
	if len(f.Fields) <= 1 {
		return
	}

	// Blur current field
	f.Fields[f.FocusedField].Input.Blur()

	// Move to next field
	f.FocusedField = (f.FocusedField + 1) % len(f.Fields)

	// Focus new field
	f.Fields[f.FocusedField].Input.Focus()
}

// SetFocus sets focus to a specific field
func (f *InputForm) SetFocus(index int) {
	if index < 0 || index >= len(f.Fields) {
		return
	}

	// Blur current field
	if f.FocusedField >= 0 && f.FocusedField < len(f.Fields) {
		f.Fields[f.FocusedField].Input.Blur()
	}

	// Focus new field
	f.FocusedField = index
	f.Fields[f.FocusedField].Input.Focus()
}

// Value returns the value of a field by index
func (f *InputForm) Value(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	return strings.TrimSpace(f.Fields[index].Input.Value())
}

// SetValue sets the value of a field by index
func (f *InputForm) SetValue(index int, value string) {
	if index < 0 || index >= len(f.Fields) {
		return
	}
	field := &f.Fields[index]
	for i, opt := range field.Options {
		if opt == value {
			field.option = i
		}
	}
	field.Input.SetValue(value)
}

// Reset clears all field values and resets focus to the first field
func (f *InputForm) Reset() {
	for i := range f.Fields {
		field := &f.Fields[i]
		field.Input.SetValue("")
		field.option = 0
		if len(field.Options) > 0 {
			field.Input.SetValue(field.Options[0])
		}
		field.Input.Blur()
	}
	f.FocusedField = 0
	if len(f.Fields) > 0 {
		f.Fields[0].Input.Focus()
	}
}

// RenderField renders a single field with appropriate styling
func (f *InputForm) RenderField(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}

	field := f.Fields[index]
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render(field.Label))
	b.WriteString("\n")

	view := field.Input.View()
	if len(field.Options) > 0 {
		view = "‹ " + field.Input.Value() + " ›"
	}
	if index == f.FocusedField {
		b.WriteString(styles.InputFocused.Render(view))
	} else {
		b.WriteString(styles.InputField.Render(view))
	}

	return b.String()
}

// RenderHelp renders the help text for the form
func (f *InputForm) RenderHelp(submitText string) string {
	var parts []string

	if len(f.Fields) > 1 {
		parts = append(parts, styles.HelpKey.Render("tab")+" "+styles.HelpDesc.Render("next field"))
	}
	if f.FocusedField >= 0 && f.FocusedField < len(f.Fields) && len(f.Fields[f.FocusedField].Options) > 0 {
		parts = append(parts, styles.HelpKey.Render("↑/↓")+" "+styles.HelpDesc.Render("choose"))
	}
	parts = append(parts, styles.HelpKey.Render("enter")+" "+styles.HelpDesc.Render(submitText))
	parts = append(parts, styles.HelpKey.Render("esc")+" "+styles.HelpDesc.Render("cancel"))

	return strings.Join(parts, "  ")
}
