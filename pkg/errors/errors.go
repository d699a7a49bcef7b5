package errors

import (
	"fmt"
)

// InvalidColorError reports a malformed hex color value along with the
// context it was found in (an override file line, a semantic key).
type InvalidColorError struct {
	Value   string
	Context string
}

// NewInvalidColorError constructs an InvalidColorError.
func NewInvalidColorError(value, context string) error {
	return &InvalidColorError{Value: value, Context: context}
}

func (e *InvalidColorError) Error() string {
	if e == nil {
		return ""
	}

	if e.Value == "" {
		if e.Context != "" {
			return fmt.Sprintf("invalid color: empty value in %s", e.Context)
		}
		return "invalid color: empty value"
	}
	if e.Context != "" {
		return fmt.Sprintf("invalid color: %q in %s (expected #RRGGBB or RRGGBB)", e.Value, e.Context)
	}
	return fmt.Sprintf("invalid color: %q (expected #RRGGBB or RRGGBB)", e.Value)
}

// MissingInputError indicates a required input file is absent.
type MissingInputError struct {
	Path string
}

// NewMissingInputError constructs a MissingInputError.
func NewMissingInputError(path string) error {
	return &MissingInputError{Path: path}
}

func (e *MissingInputError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("missing input: %s", e.Path)
}

// TemplateNotFoundError indicates a named template is absent from the
// templates directory.
type TemplateNotFoundError struct {
	Path string
}

// NewTemplateNotFoundError constructs a TemplateNotFoundError.
func NewTemplateNotFoundError(path string) error {
	return &TemplateNotFoundError{Path: path}
}

func (e *TemplateNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("template not found: %s", e.Path)
}

// ParseError represents a JSON decoding failure for an input document.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
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

// ValidationError captures structural issues in a loaded input document.
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
