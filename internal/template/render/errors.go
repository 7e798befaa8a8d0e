package render

import (
	"errors"
	"fmt"
)

// RenderErrorType categorizes render errors.
type RenderErrorType int

const (
	// TemplateReadFailed indicates a template source file could not be read.
	TemplateReadFailed RenderErrorType = iota
	// TemplateRenderFailed indicates the template engine rejected a template.
	TemplateRenderFailed
	// UnknownEngine indicates an unsupported template engine name.
	UnknownEngine
)

// String returns the error kind name.
func (t RenderErrorType) String() string {
	switch t {
	case TemplateReadFailed:
		return "TemplateReadError"
	case TemplateRenderFailed:
		return "TemplateRenderError"
	case UnknownEngine:
		return "UnknownEngine"
	default:
		return fmt.Sprintf("RenderErrorType(%d)", int(t))
	}
}

// RenderError represents a template rendering error.
type RenderError struct {
	// Type categorizes the error.
	Type RenderErrorType
	// Message is the error message.
	Message string
	// Path is the template path the error relates to.
	Path string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.Path != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s %s: %v", e.Message, e.Path, e.Cause)
		}
		return fmt.Sprintf("%s %s", e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// newRenderError creates a new RenderError.
func newRenderError(typ RenderErrorType, message, path string, cause error) *RenderError {
	return &RenderError{
		Type:    typ,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// IsTemplateReadError reports whether err is a TemplateReadError.
func IsTemplateReadError(err error) bool {
	var renderErr *RenderError
	return errors.As(err, &renderErr) && renderErr.Type == TemplateReadFailed
}

// IsTemplateRenderError reports whether err is a TemplateRenderError.
func IsTemplateRenderError(err error) bool {
	var renderErr *RenderError
	return errors.As(err, &renderErr) && renderErr.Type == TemplateRenderFailed
}

var errIsDirectory = errors.New("is a directory")
