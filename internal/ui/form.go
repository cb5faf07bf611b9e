package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dylanshade/style-organizer/internal/models"
)

// EntryForm edits the name, prompt and negative prompt of one style
type EntryForm struct {
	name           textinput.Model
	prompt         textarea.Model
	negativePrompt textarea.Model
	focused        int
	submitted      bool
	cancelled      bool

	// initial is the record being edited; seeded is what the inputs made of
	// it after their own sanitizing (tabs become spaces)
	initial models.Style
	seeded  models.Style
}

// Entry form field indices
const (
	nameField = iota
	promptField
	negativePromptField
	entryFieldCount
)

// NewEntryForm creates a form pre-filled with initial
func NewEntryForm(initial models.Style) *EntryForm {
	name := textinput.New()
	name.Placeholder = "Style name"
	name.Width = 60
	name.SetValue(initial.Name)
	name.Focus()

	prompt := textarea.New()
	prompt.Placeholder = "Prompt"
	prompt.ShowLineNumbers = false
	prompt.CharLimit = 0
	prompt.MaxHeight = 0
	prompt.SetWidth(80)
	prompt.SetHeight(5)
	prompt.SetValue(initial.Prompt)
	prompt.Blur()

	negative := textarea.New()
	negative.Placeholder = "Negative prompt"
	negative.ShowLineNumbers = false
	negative.CharLimit = 0
	negative.MaxHeight = 0
	negative.SetWidth(80)
	negative.SetHeight(4)
	negative.SetValue(initial.NegativePrompt)
	negative.Blur()

	return &EntryForm{
		name:           name,
		prompt:         prompt,
		negativePrompt: negative,
		focused:        nameField,
		initial:        initial,
		seeded: models.Style{
			Name:           name.Value(),
			Prompt:         prompt.Value(),
			NegativePrompt: negative.Value(),
		},
	}
}

// Update handles form updates
func (f *EntryForm) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab":
			f.setFocus((f.focused + 1) % entryFieldCount)
			return nil
		case "shift+tab":
			f.setFocus((f.focused + entryFieldCount - 1) % entryFieldCount)
			return nil
		case "enter":
			if f.focused == nameField {
				f.setFocus(promptField)
				return nil
			}
		case "ctrl+s":
			f.submitted = true
			return nil
		case "esc":
			f.cancelled = true
			return nil
		}
	}

	var cmd tea.Cmd
	switch f.focused {
	case nameField:
		f.name, cmd = f.name.Update(msg)
	case promptField:
		f.prompt, cmd = f.prompt.Update(msg)
	case negativePromptField:
		f.negativePrompt, cmd = f.negativePrompt.Update(msg)
	}
	return cmd
}

func (f *EntryForm) setFocus(field int) {
	f.name.Blur()
	f.prompt.Blur()
	f.negativePrompt.Blur()

	f.focused = field
	switch field {
	case nameField:
		f.name.Focus()
	case promptField:
		f.prompt.Focus()
	case negativePromptField:
		f.negativePrompt.Focus()
	}
}

// Resize fits the text areas to the terminal width
func (f *EntryForm) Resize(width int) {
	w := width - 6
	if w < 20 {
		w = 20
	}
	if w > 120 {
		w = 120
	}
	f.name.Width = w
	f.prompt.SetWidth(w)
	f.negativePrompt.SetWidth(w)
}

// ToStyle converts the form contents to a style. Empty fields stay empty and
// fields the user did not touch keep their exact initial text.
func (f *EntryForm) ToStyle() models.Style {
	return models.Style{
		Name:           keepUnchanged(f.name.Value(), f.seeded.Name, f.initial.Name),
		Prompt:         keepUnchanged(f.prompt.Value(), f.seeded.Prompt, f.initial.Prompt),
		NegativePrompt: keepUnchanged(f.negativePrompt.Value(), f.seeded.NegativePrompt, f.initial.NegativePrompt),
	}
}

func keepUnchanged(value, seeded, initial string) string {
	if value == seeded {
		return initial
	}
	return value
}

// IsSubmitted returns whether the form has been saved
func (f *EntryForm) IsSubmitted() bool {
	return f.submitted
}

// IsCancelled returns whether the form was dismissed
func (f *EntryForm) IsCancelled() bool {
	return f.cancelled
}

// View renders the labelled fields
func (f *EntryForm) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		StyleFormLabel.Render("Name:"), f.name.View(), "",
		StyleFormLabel.Render("Prompt:"), f.prompt.View(), "",
		StyleFormLabel.Render("Negative Prompt:"), f.negativePrompt.View(),
	)
}

// SelectForm handles selection from a list of options
type SelectForm struct {
	options   []SelectOption
	selected  int
	submitted bool
	cancelled bool
}

// SelectOption represents an option in the select form
type SelectOption struct {
	Label string
	Value interface{}
}

// NewSelectForm creates a new select form
func NewSelectForm(options []SelectOption) *SelectForm {
	return &SelectForm{
		options:  options,
		selected: 0,
	}
}

// Update handles select form updates
func (f *SelectForm) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if f.selected > 0 {
				f.selected--
			}
		case "down", "j":
			if f.selected < len(f.options)-1 {
				f.selected++
			}
		case "enter":
			f.submitted = true
		case "esc", "q":
			f.cancelled = true
		}
	}
	return nil
}

// GetSelected returns the selected option
func (f *SelectForm) GetSelected() *SelectOption {
	if f.selected >= 0 && f.selected < len(f.options) {
		return &f.options[f.selected]
	}
	return nil
}

// IsSubmitted returns whether an option has been selected
func (f *SelectForm) IsSubmitted() bool {
	return f.submitted
}

// IsCancelled returns whether the menu was dismissed
func (f *SelectForm) IsCancelled() bool {
	return f.cancelled
}

// View renders the options, highlighting the selected one
func (f *SelectForm) View() string {
	lines := make([]string, 0, len(f.options))
	for i, option := range f.options {
		lines = append(lines, CreateOption(option.Label, i == f.selected))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// PathPrompt asks for a single line of text, such as a table file path
type PathPrompt struct {
	input     textinput.Model
	title     string
	submitted bool
	cancelled bool
}

// NewPathPrompt creates a prompt pre-filled with value
func NewPathPrompt(title, value string) *PathPrompt {
	ti := textinput.New()
	ti.Placeholder = "styles.csv"
	ti.Width = 60
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()
	return &PathPrompt{input: ti, title: title}
}

// Update handles prompt updates
func (p *PathPrompt) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			p.submitted = true
			return nil
		case "esc":
			p.cancelled = true
			return nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// Value returns the entered text
func (p *PathPrompt) Value() string {
	return p.input.Value()
}

// IsSubmitted returns whether enter was pressed
func (p *PathPrompt) IsSubmitted() bool {
	return p.submitted
}

// IsCancelled returns whether the prompt was dismissed
func (p *PathPrompt) IsCancelled() bool {
	return p.cancelled
}

// View renders the prompt
func (p *PathPrompt) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, StyleFormLabel.Render(p.title), p.input.View())
}
