package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Design System Colors
var (
	// Primary brand colors
	ColorPrimary   = lipgloss.Color("205") // Bright magenta/pink
	ColorSecondary = lipgloss.Color("33")  // Bright cyan/blue
	ColorAccent    = lipgloss.Color("214") // Bright orange/yellow

	// Semantic colors
	ColorSuccess = lipgloss.Color("10")
	ColorWarning = lipgloss.Color("11")
	ColorError   = lipgloss.Color("9")

	// Neutral colors
	ColorText       = lipgloss.Color("252")
	ColorTextMuted  = lipgloss.Color("244")
	ColorTextDim    = lipgloss.Color("240")
	ColorBorder     = lipgloss.Color("238")
	ColorBackground = lipgloss.Color("235")
	ColorSurface    = lipgloss.Color("236")
)

// Component Styles
var (
	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	StyleTextDim = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	StyleFocused = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(ColorSecondary).
			Bold(true).
			Padding(0, 1)

	StyleUnselected = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	StyleBackButton = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Background(ColorSurface).
			Padding(0, 1).
			MarginRight(2)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true).
			Padding(0, 1)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true).
			Padding(0, 1)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true).
			Padding(0, 1)

	StyleModal = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			Background(ColorBackground)

	StyleFormLabel = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	StyleMetadata = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Padding(0, 1)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// CreateHeader renders a back button next to a title
func CreateHeader(backText, titleText string) string {
	backButton := StyleBackButton.Render("← " + backText)
	title := StyleTitle.Render(titleText)
	return lipgloss.JoinHorizontal(lipgloss.Left, backButton, title)
}

// CreateHelp renders dimmed help text, truncated to width
func CreateHelp(text string, width int) string {
	if width > 5 && lipgloss.Width(text) > width-2 {
		runes := []rune(text)
		if len(runes) > width-5 {
			text = string(runes[:width-5]) + "..."
		}
	}
	return StyleTextDim.Padding(0, 1).Render(text)
}

// CreateStatus renders a status line in the style for statusType
func CreateStatus(text string, statusType string) string {
	switch statusType {
	case "success":
		return StyleSuccess.Render(text)
	case "warning":
		return StyleWarning.Render(text)
	case "error":
		return StyleError.Render(text)
	default:
		return StyleTextDim.Render(text)
	}
}

// CreateOption renders one selectable option line
func CreateOption(label string, isSelected bool) string {
	if isSelected {
		return StyleFocused.Render("▶ " + label)
	}
	return StyleUnselected.Render("  " + label)
}

// CenterModal places content in the middle of the screen
func CenterModal(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
