package errors

import (
	"fmt"
)

// ParseError represents a JSON or YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration and palette validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// GenerationError reports a failure while producing a single theme.
type GenerationError struct {
	Theme string
	Stage string
	Err   error
}

// NewGenerationError constructs a GenerationError for the named theme and pipeline stage.
func NewGenerationError(theme, stage string, err error) error {
	return &GenerationError{Theme: theme, Stage: stage, Err: err}
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Theme != "" && e.Stage != "":
		return fmt.Sprintf("generate %s: %s: %v", e.Theme, e.Stage, e.Err)
	case e.Theme != "":
		return fmt.Sprintf("generate %s: %v", e.Theme, e.Err)
	default:
		return fmt.Sprintf("generate: %v", e.Err)
	}
}

// Unwrap exposes the root error.
func (e *GenerationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
