package storage

import (
	"fmt"
)

// FileAccessError reports that a table or settings file could not be opened,
// read, or written
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// ParseError reports a table row that is not exactly three fields, or a line
// the delimited-text reader could not parse
type ParseError struct {
	Path   string
	Line   int
	Fields int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: line %d: expected %d fields, got %d", e.Path, e.Line, columnCount, e.Fields)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError reports a settings file that exists but is not valid
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid settings file %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
