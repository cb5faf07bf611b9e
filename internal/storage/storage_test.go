package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dylanshade/style-organizer/internal/models"
)

func newTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()
	dir := t.TempDir()
	return NewStorage(filepath.Join(dir, "settings.json")), dir
}

func TestTableRoundTrip(t *testing.T) {
	s, dir := newTestStorage(t)
	path := filepath.Join(dir, "styles.csv")

	rows := []models.Style{
		{Name: "plain", Prompt: "a photo of {prompt}", NegativePrompt: "blurry"},
		{Name: "commas, inside", Prompt: "red, green, blue", NegativePrompt: ""},
		{Name: `quotes "here"`, Prompt: `say "cheese"`, NegativePrompt: `""`},
		{Name: "newlines", Prompt: "line one\nline two", NegativePrompt: "\n"},
		{Name: "crlf", Prompt: "line one\r\nline two", NegativePrompt: "a\r\nb\r"},
		{Name: "lone cr\r", Prompt: "\r", NegativePrompt: "x\ry"},
		{Name: "marker \uE000", Prompt: "\uE000r", NegativePrompt: "\uE000\uE000\r\n"},
		models.Separator(),
		{Name: " padded ", Prompt: "\ttab", NegativePrompt: "unicode ✓"},
		{},
	}

	require.NoError(t, s.SaveTable(path, rows))
	got, err := s.LoadTable(path)
	require.NoError(t, err)
	require.Equal(t, rows, got)
}

func TestSaveTableWritesHeader(t *testing.T) {
	s, dir := newTestStorage(t)
	path := filepath.Join(dir, "styles.csv")

	require.NoError(t, s.SaveTable(path, []models.Style{{Name: "A", Prompt: "p1", NegativePrompt: "n1"}}))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "name,prompt,negative_prompt\nA,p1,n1\n", string(content))
}

func TestSaveTableEmpty(t *testing.T) {
	s, dir := newTestStorage(t)
	path := filepath.Join(dir, "empty.csv")

	require.NoError(t, s.SaveTable(path, nil))
	got, err := s.LoadTable(path)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestLoadTableSkipsAnyHeader(t *testing.T) {
	s, dir := newTestStorage(t)
	path := filepath.Join(dir, "styles.csv")
	require.NoError(t, os.WriteFile(path, []byte("whatever,header\r\nA,p1,n1\r\nB,p2,n2\r\n"), 0644))

	got, err := s.LoadTable(path)
	require.NoError(t, err)
	require.Equal(t, []models.Style{
		{Name: "A", Prompt: "p1", NegativePrompt: "n1"},
		{Name: "B", Prompt: "p2", NegativePrompt: "n2"},
	}, got)
}

func TestLoadTableCRLFRecords(t *testing.T) {
	s, dir := newTestStorage(t)
	path := filepath.Join(dir, "styles.csv")
	content := "name,prompt,negative_prompt\r\nA,p1,n1\r\n\"B\",\"two\r\nlines\",n2\r\nC,p3,n3\r\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	got, err := s.LoadTable(path)
	require.NoError(t, err)
	require.Equal(t, []models.Style{
		{Name: "A", Prompt: "p1", NegativePrompt: "n1"},
		{Name: "B", Prompt: "two\r\nlines", NegativePrompt: "n2"},
		{Name: "C", Prompt: "p3", NegativePrompt: "n3"},
	}, got)
}

func TestLoadTableLineNumbersWithQuotedCR(t *testing.T) {
	s, dir := newTestStorage(t)
	path := filepath.Join(dir, "styles.csv")
	content := "name,prompt,negative_prompt\r\nA,\"x\r\ny\",n1\r\nB,p2\r\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := s.LoadTable(path)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 4, parseErr.Line)
}

func TestLoadTableEmptyFile(t *testing.T) {
	s, dir := newTestStorage(t)
	path := filepath.Join(dir, "styles.csv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	got, err := s.LoadTable(path)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestLoadTableRejectsWrongFieldCount(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantLine   int
		wantFields int
	}{
		{name: "short row", content: "name,prompt,negative_prompt\nA,p1,n1\nB,p2\n", wantLine: 3, wantFields: 2},
		{name: "long row", content: "name,prompt,negative_prompt\nA,p1,n1,extra\n", wantLine: 2, wantFields: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, dir := newTestStorage(t)
			path := filepath.Join(dir, "bad.csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			rows, err := s.LoadTable(path)
			require.Nil(t, rows)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, tt.wantLine, parseErr.Line)
			require.Equal(t, tt.wantFields, parseErr.Fields)
		})
	}
}

func TestLoadTableBadQuoting(t *testing.T) {
	s, dir := newTestStorage(t)
	path := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,prompt,negative_prompt\nA,\"unterminated,n1\n"), 0644))

	_, err := s.LoadTable(path)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadTableMissingFile(t *testing.T) {
	s, dir := newTestStorage(t)

	_, err := s.LoadTable(filepath.Join(dir, "missing.csv"))
	var accessErr *FileAccessError
	require.ErrorAs(t, err, &accessErr)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestSaveTableMissingDirectory(t *testing.T) {
	s, dir := newTestStorage(t)

	err := s.SaveTable(filepath.Join(dir, "nope", "styles.csv"), nil)
	var accessErr *FileAccessError
	require.ErrorAs(t, err, &accessErr)
	require.Equal(t, "write", accessErr.Op)
}

func TestLoadPreferencesDefaultsWithoutSideEffect(t *testing.T) {
	s, _ := newTestStorage(t)

	prefs, err := s.LoadPreferences()
	require.NoError(t, err)
	require.Equal(t, models.Preferences{ShowFullPromptInfo: true, FontSize: 14}, prefs)

	_, err = os.Stat(s.SettingsPath())
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestPreferencesRoundTrip(t *testing.T) {
	s, _ := newTestStorage(t)
	want := models.Preferences{ShowFullPromptInfo: false, FontSize: 18}

	require.NoError(t, s.SavePreferences(want))
	got, err := s.LoadPreferences()
	require.NoError(t, err)
	require.Equal(t, want, got)

	content, err := os.ReadFile(s.SettingsPath())
	require.NoError(t, err)
	require.JSONEq(t, `{"show_full_prompt_info": false, "font_size": 18}`, string(content))
}

func TestSavePreferencesReplacesContent(t *testing.T) {
	s, _ := newTestStorage(t)
	require.NoError(t, os.WriteFile(s.SettingsPath(), []byte(`{"show_full_prompt_info": true, "font_size": 20, "theme": "dark"}`), 0644))

	require.NoError(t, s.SavePreferences(models.Preferences{ShowFullPromptInfo: true, FontSize: 12}))
	content, err := os.ReadFile(s.SettingsPath())
	require.NoError(t, err)
	require.JSONEq(t, `{"show_full_prompt_info": true, "font_size": 12}`, string(content))
}

func TestLoadPreferencesPartialFileKeepsDefaults(t *testing.T) {
	s, _ := newTestStorage(t)
	require.NoError(t, os.WriteFile(s.SettingsPath(), []byte(`{"font_size": 16}`), 0644))

	prefs, err := s.LoadPreferences()
	require.NoError(t, err)
	require.Equal(t, models.Preferences{ShowFullPromptInfo: true, FontSize: 16}, prefs)
}

func TestLoadPreferencesAcceptsAnyInteger(t *testing.T) {
	for _, size := range []int{100, 0, -3} {
		s, _ := newTestStorage(t)
		content := fmt.Sprintf(`{"show_full_prompt_info": false, "font_size": %d}`, size)
		require.NoError(t, os.WriteFile(s.SettingsPath(), []byte(content), 0644))

		prefs, err := s.LoadPreferences()
		require.NoError(t, err)
		require.Equal(t, models.Preferences{ShowFullPromptInfo: false, FontSize: size}, prefs)
	}
}

func TestLoadPreferencesMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "show_full_prompt_info = yes"},
		{name: "wrong type", content: `{"font_size": "big"}`},
		{name: "fractional", content: `{"font_size": 12.5}`},
		{name: "empty", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStorage(t)
			require.NoError(t, os.WriteFile(s.SettingsPath(), []byte(tt.content), 0644))

			_, err := s.LoadPreferences()
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
		})
	}
}
