package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/dylanshade/style-organizer/internal/models"
)

// Field selects which part of a style gets copied
type Field int

const (
	FieldPrompt Field = iota
	FieldNegativePrompt
)

// writeAll is swapped out in tests
var writeAll = clipboard.WriteAll

// Copy copies text to the system clipboard
func Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility found (xclip, xsel, or wl-copy)")
	}
	return writeAll(text)
}

// CopyStyle copies one field of a style and returns a status message
func CopyStyle(style models.Style, field Field) (string, error) {
	text, what := style.Prompt, "prompt"
	if field == FieldNegativePrompt {
		text, what = style.NegativePrompt, "negative prompt"
	}

	if err := Copy(text); err != nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return fmt.Sprintf("Copied %s of %q to clipboard!", what, style.Name), nil
}
