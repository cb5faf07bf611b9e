package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dylanshade/style-organizer/internal/models"
)

// DefaultSettingsPath is the preferences file used when none is configured
const DefaultSettingsPath = "settings.json"

const columnCount = 3

// Header is the first line written to every table file
var Header = []string{"name", "prompt", "negative_prompt"}

// Storage handles all file system operations for style tables and the
// preferences file
type Storage struct {
	settingsPath string
}

// NewStorage creates a new storage instance
func NewStorage(settingsPath string) *Storage {
	if settingsPath == "" {
		settingsPath = DefaultSettingsPath
	}
	return &Storage{settingsPath: settingsPath}
}

// SettingsPath returns the preferences file location
func (s *Storage) SettingsPath() string {
	return s.settingsPath
}

// LoadTable reads a style table. The first line is a header and is skipped;
// every following row must have exactly three fields or the whole load fails.
func (s *Storage) LoadTable(path string) ([]models.Style, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	return readTable(path, file)
}

func readTable(path string, r io.Reader) ([]models.Style, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &FileAccessError{Op: "read", Path: path, Err: err}
	}

	reader := csv.NewReader(bytes.NewReader(protectQuotedCR(data)))
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Style{}, nil
		}
		return nil, wrapReadError(path, err)
	}

	rows := []models.Style{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapReadError(path, err)
		}
		if len(record) != columnCount {
			line, _ := reader.FieldPos(0)
			return nil, &ParseError{Path: path, Line: line, Fields: len(record)}
		}
		for i := range record {
			record[i] = restoreQuotedCR(record[i])
		}
		rows = append(rows, models.StyleFromFields(record))
	}

	return rows, nil
}

// crEscape marks escaped bytes between protectQuotedCR and restoreQuotedCR.
// encoding/csv folds "\r\n" inside quoted fields into "\n", so carriage
// returns in quoted fields are hidden from it. Literal occurrences of the
// marker are doubled so every field decodes unambiguously.
const crEscape = "\uE000"

// protectQuotedCR rewrites \r inside quoted fields as crEscape+"r" and every
// crEscape as crEscape+crEscape. Line breaks between records are untouched,
// so CRLF-terminated files still parse and line numbers are preserved.
func protectQuotedCR(data []byte) []byte {
	if bytes.IndexByte(data, '\r') < 0 && !bytes.Contains(data, []byte(crEscape)) {
		return data
	}

	out := make([]byte, 0, len(data)+16)
	inQuotes := false
	for i := 0; i < len(data); i++ {
		switch {
		case data[i] == '"':
			inQuotes = !inQuotes
			out = append(out, '"')
		case data[i] == '\r' && inQuotes:
			out = append(out, crEscape...)
			out = append(out, 'r')
		case bytes.HasPrefix(data[i:], []byte(crEscape)):
			out = append(out, crEscape...)
			out = append(out, crEscape...)
			i += len(crEscape) - 1
		default:
			out = append(out, data[i])
		}
	}
	return out
}

func restoreQuotedCR(field string) string {
	if !strings.Contains(field, crEscape) {
		return field
	}

	var b strings.Builder
	b.Grow(len(field))
	for {
		idx := strings.Index(field, crEscape)
		if idx < 0 {
			b.WriteString(field)
			return b.String()
		}
		b.WriteString(field[:idx])
		field = field[idx+len(crEscape):]
		switch {
		case strings.HasPrefix(field, "r"):
			b.WriteByte('\r')
			field = field[1:]
		case strings.HasPrefix(field, crEscape):
			b.WriteString(crEscape)
			field = field[len(crEscape):]
		default:
			b.WriteString(crEscape)
		}
	}
}

func wrapReadError(path string, err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Path: path, Line: csvErr.Line, Err: csvErr.Err}
	}
	return &FileAccessError{Op: "read", Path: path, Err: err}
}

// SaveTable writes the header followed by one row per style
func (s *Storage) SaveTable(path string, rows []models.Style) error {
	var buf bytes.Buffer
	if err := writeTable(&buf, rows); err != nil {
		return fmt.Errorf("failed to encode table: %w", err)
	}
	return writeFileAtomic(path, buf.Bytes())
}

func writeTable(w io.Writer, rows []models.Style) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row.Fields()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// LoadPreferences reads the preferences file. A missing file yields the
// defaults and is not created; unreadable or malformed content is a
// ConfigError.
func (s *Storage) LoadPreferences() (models.Preferences, error) {
	content, err := os.ReadFile(s.settingsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.DefaultPreferences(), nil
		}
		return models.Preferences{}, &FileAccessError{Op: "read", Path: s.settingsPath, Err: err}
	}

	prefs := models.DefaultPreferences()
	if err := json.Unmarshal(content, &prefs); err != nil {
		return models.Preferences{}, &ConfigError{Path: s.settingsPath, Err: err}
	}
	return prefs, nil
}

// SavePreferences overwrites the preferences file with prefs
func (s *Storage) SavePreferences(prefs models.Preferences) error {
	content, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	return writeFileAtomic(s.settingsPath, content)
}

// writeFileAtomic writes through a temp file in the target directory so a
// failed write never truncates the previous file
func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	return nil
}
