package app

import (
	"errors"
	"fmt"
)

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// PromptFailed indicates a variable prompt was aborted or failed.
	PromptFailed AppErrorType = iota
	// ValidationFailed indicates invalid workflow options.
	ValidationFailed
	// EngineFailed indicates the template engine could not be selected.
	EngineFailed
)

// String returns the error kind name.
func (t AppErrorType) String() string {
	switch t {
	case PromptFailed:
		return "PromptFailed"
	case ValidationFailed:
		return "ValidationFailed"
	case EngineFailed:
		return "EngineFailed"
	default:
		return fmt.Sprintf("AppErrorType(%d)", int(t))
	}
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewPromptError creates a prompt error.
func NewPromptError(message string, cause error) *AppError {
	return NewAppError(PromptFailed, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewEngineError creates an engine selection error.
func NewEngineError(message string, cause error) *AppError {
	return NewAppError(EngineFailed, message, cause)
}

// IsPromptError reports whether err is a prompt error.
func IsPromptError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == PromptFailed
}
