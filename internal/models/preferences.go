package models

import "fmt"

// Default preference values, used when no settings file exists
const (
	DefaultShowFullPromptInfo = true
	DefaultFontSize           = 14
)

// Bounds accepted when the user enters a new font size. Stored files may
// hold any integer.
const (
	MinFontSize = 6
	MaxFontSize = 72
)

// Preferences is the persisted user preferences record
type Preferences struct {
	ShowFullPromptInfo bool `json:"show_full_prompt_info"`
	FontSize           int  `json:"font_size"`
}

// DefaultPreferences returns {true, 14}
func DefaultPreferences() Preferences {
	return Preferences{
		ShowFullPromptInfo: DefaultShowFullPromptInfo,
		FontSize:           DefaultFontSize,
	}
}

// ValidateFontSize checks a newly entered font size
func ValidateFontSize(size int) error {
	if size < MinFontSize || size > MaxFontSize {
		return fmt.Errorf("font size %d out of range %d-%d", size, MinFontSize, MaxFontSize)
	}
	return nil
}
