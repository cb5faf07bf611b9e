package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/dylanshade/style-organizer/internal/models"
)

// formModal wraps a huh form shown as a modal. Esc dismisses it.
type formModal struct {
	form      *huh.Form
	cancelled bool
}

func (m *formModal) Init() tea.Cmd {
	return m.form.Init()
}

// Update forwards msg to the form. Commands the form emits after it has
// finished are dropped so the embedding program keeps running.
func (m *formModal) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.cancelled = true
		return nil
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State != huh.StateNormal {
		return nil
	}
	return cmd
}

// Done reports whether the modal was submitted or dismissed
func (m *formModal) Done() bool {
	return m.cancelled || m.form.State != huh.StateNormal
}

func (m *formModal) completed() bool {
	return !m.cancelled && m.form.State == huh.StateCompleted
}

func (m *formModal) View() string {
	return m.form.View()
}

// ConfirmModal asks a yes/no question
type ConfirmModal struct {
	formModal
	answer bool
}

// NewConfirmModal creates a confirmation modal defaulting to "No"
func NewConfirmModal(title, question string) *ConfirmModal {
	c := &ConfirmModal{}
	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(question).
				Affirmative("Yes").
				Negative("No").
				Value(&c.answer),
		),
	).WithShowHelp(false)
	return c
}

// Confirmed reports whether the user answered yes
func (c *ConfirmModal) Confirmed() bool {
	return c.completed() && c.answer
}

// SettingsModal edits the preferences record
type SettingsModal struct {
	formModal
	showFull bool
	fontSize string
}

// NewSettingsModal creates a settings form pre-filled from prefs
func NewSettingsModal(prefs models.Preferences) *SettingsModal {
	s := &SettingsModal{
		showFull: prefs.ShowFullPromptInfo,
		fontSize: strconv.Itoa(prefs.FontSize),
	}
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show Full Prompt Info").
				Affirmative("On").
				Negative("Off").
				Value(&s.showFull),
			huh.NewInput().
				Title("Font Size").
				Value(&s.fontSize).
				Validate(validateFontSize),
		).Title("Settings"),
	).WithShowHelp(false)
	return s
}

func validateFontSize(value string) error {
	size, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("font size must be a whole number")
	}
	return models.ValidateFontSize(size)
}

// Submitted reports whether the settings were saved
func (s *SettingsModal) Submitted() bool {
	return s.completed()
}

// Preferences returns the edited preferences. Only meaningful once
// Submitted is true.
func (s *SettingsModal) Preferences() (models.Preferences, error) {
	if err := validateFontSize(s.fontSize); err != nil {
		return models.Preferences{}, err
	}
	size, _ := strconv.Atoi(strings.TrimSpace(s.fontSize))
	return models.Preferences{ShowFullPromptInfo: s.showFull, FontSize: size}, nil
}
