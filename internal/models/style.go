package models

import "fmt"

// SeparatorName is the name carried by the separator sentinel record
const SeparatorName = "----------"

// Style is one row of a style table: a named prompt / negative prompt pair
type Style struct {
	Name           string `json:"name" yaml:"name"`
	Prompt         string `json:"prompt" yaml:"prompt"`
	NegativePrompt string `json:"negative_prompt" yaml:"negative_prompt"`
}

// Separator returns the sentinel record used as a visual divider
func Separator() Style {
	return Style{Name: SeparatorName}
}

// IsSeparator reports whether s is exactly the separator sentinel
func (s Style) IsSeparator() bool {
	return s == Separator()
}

// Fields returns the record in table column order
func (s Style) Fields() []string {
	return []string{s.Name, s.Prompt, s.NegativePrompt}
}

// StyleFromFields builds a Style from a table row. Missing trailing fields
// are treated as empty text.
func StyleFromFields(fields []string) Style {
	var s Style
	if len(fields) > 0 {
		s.Name = fields[0]
	}
	if len(fields) > 1 {
		s.Prompt = fields[1]
	}
	if len(fields) > 2 {
		s.NegativePrompt = fields[2]
	}
	return s
}

// Label returns the visible text for the style. With fullInfo the prompt and
// negative prompt are included, otherwise only the name.
func (s Style) Label(fullInfo bool) string {
	if !fullInfo {
		return s.Name
	}
	return fmt.Sprintf("%s: %s | Negative Prompt: %s", s.Name, s.Prompt, s.NegativePrompt)
}

// Markdown renders the style for the preview pane
func (s Style) Markdown() string {
	if s.IsSeparator() {
		return "---\n"
	}
	md := "# " + s.Name + "\n\n## Prompt\n\n" + quoteOrEmpty(s.Prompt)
	md += "\n\n## Negative Prompt\n\n" + quoteOrEmpty(s.NegativePrompt) + "\n"
	return md
}

func quoteOrEmpty(text string) string {
	if text == "" {
		return "_empty_"
	}
	return "```\n" + text + "\n```"
}
