// Package reporterror defines the error types raised by the report pipeline.
// Every type wraps its cause so callers can use errors.Is / errors.As.
package reporterror

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyDataset is matched by every EmptyDatasetError and by render errors
// caused by charts without data.
var ErrEmptyDataset = errors.New("dataset has no rows")

// FileError represents a failed file operation (open, create, write, close).
// Missing files wrap fs.ErrNotExist.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ParseError represents a malformed CSV file or an undecodable value.
type ParseError struct {
	File  string
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse %s", e.File)
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %s='%s'", e.Field, e.Value)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingColumnError reports a CSV header lacking a required column.
type MissingColumnError struct {
	File   string
	Column string
	Header []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("parse %s: missing column '%s' (header: %s)",
		e.File, e.Column, strings.Join(e.Header, ","))
}

// EmptyDatasetError reports a dataset with no rows left after cleaning.
type EmptyDatasetError struct {
	Dataset string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("dataset %s: no rows left after cleaning", e.Dataset)
}

// Is makes errors.Is(err, ErrEmptyDataset) true.
func (e *EmptyDatasetError) Is(target error) bool {
	return target == ErrEmptyDataset
}

// RenderError wraps a chart library failure.
type RenderError struct {
	Chart string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Chart, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
