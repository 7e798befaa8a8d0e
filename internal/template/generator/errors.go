package generator

import (
	"errors"
	"fmt"
)

// GeneratorErrorType categorizes generator errors.
type GeneratorErrorType int

const (
	// GeneratorWriteFailed indicates a directory or file write operation failed.
	GeneratorWriteFailed GeneratorErrorType = iota
	// GeneratorPathError indicates an output path could not be derived.
	GeneratorPathError
)

// String returns the error kind name.
func (t GeneratorErrorType) String() string {
	switch t {
	case GeneratorWriteFailed:
		return "TemplateWriteError"
	case GeneratorPathError:
		return "GeneratorPathError"
	default:
		return fmt.Sprintf("GeneratorErrorType(%d)", int(t))
	}
}

// GeneratorError represents generator-specific errors.
type GeneratorError struct {
	// Type categorizes the error.
	Type GeneratorErrorType
	// Message is the error message.
	Message string
	// File is the output path related to the error (if applicable).
	File string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *GeneratorError) Error() string {
	if e.File != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (file: %s): %v", e.Message, e.File, e.Cause)
		}
		return fmt.Sprintf("%s (file: %s)", e.Message, e.File)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// newGeneratorError creates a new GeneratorError.
func newGeneratorError(typ GeneratorErrorType, message, file string, cause error) *GeneratorError {
	return &GeneratorError{
		Type:    typ,
		Message: message,
		File:    file,
		Cause:   cause,
	}
}

// IsTemplateWriteError reports whether err is a TemplateWriteError.
func IsTemplateWriteError(err error) bool {
	var genErr *GeneratorError
	return errors.As(err, &genErr) && genErr.Type == GeneratorWriteFailed
}
