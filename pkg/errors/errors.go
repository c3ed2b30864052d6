package errors

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the sentinel matched by every ConfigurationError.
var ErrConfiguration = errors.New("configuration error")

// ParseError represents a theme document decoding failure with optional line metadata.
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

// ValidationError captures theme document validation issues.
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

// ConfigurationError reports a selector or option set that cannot be used to
// build a themed wrapper. It is raised while wrappers are constructed, never
// while themes are evaluated.
type ConfigurationError struct {
	// Subject names what was being configured ("selector", "options", ...).
	Subject string
	// Received is the Go type that was rejected, when the failure is about a shape.
	Received string
	Message  string
	Err      error
}

// NewConfigurationError constructs a ConfigurationError.
func NewConfigurationError(subject, message string, err error) error {
	return &ConfigurationError{Subject: subject, Message: message, Err: err}
}

// NewUnsupportedTypeError reports a value whose Go type is not accepted for subject.
func NewUnsupportedTypeError(subject string, value any) error {
	return &ConfigurationError{
		Subject:  subject,
		Received: fmt.Sprintf("%T", value),
		Message:  "unsupported type",
	}
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.Received != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Received)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Subject != "" {
		return fmt.Sprintf("configuration error [%s]: %s", e.Subject, msg)
	}
	return fmt.Sprintf("configuration error: %s", msg)
}

// Unwrap exposes the underlying error.
func (e *ConfigurationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is the ErrConfiguration sentinel.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
