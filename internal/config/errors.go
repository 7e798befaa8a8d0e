package config

import (
	"errors"
	"fmt"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType int

const (
	// PathNotFound indicates the path given to locate the configuration does not exist.
	PathNotFound ConfigErrorType = iota
	// ConfigNotFound indicates none of the supported configuration files exist in the directory.
	ConfigNotFound
	// ImportConfigFailed indicates the configuration file exists but could not be read or decoded.
	ImportConfigFailed
	// ConfigValidationFailed indicates the decoded configuration is structurally invalid.
	ConfigValidationFailed
)

// String returns the error kind name.
func (t ConfigErrorType) String() string {
	switch t {
	case PathNotFound:
		return "PathNotFound"
	case ConfigNotFound:
		return "ConfigNotFound"
	case ImportConfigFailed:
		return "ImportConfigError"
	case ConfigValidationFailed:
		return "ConfigValidationFailed"
	default:
		return fmt.Sprintf("ConfigErrorType(%d)", int(t))
	}
}

// ConfigError represents a configuration-related error.
type ConfigError struct {
	// Type is the error type.
	Type ConfigErrorType
	// Message is the error message.
	Message string
	// Path is the file or directory the error relates to.
	Path string
	// Field is the configuration field that caused the error.
	Field string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		if e.Cause != nil {
			return fmt.Sprintf("configuration error in %s [field: %s]: %s: %v", e.Path, e.Field, e.Message, e.Cause)
		}
		return fmt.Sprintf("configuration error in %s [field: %s]: %s", e.Path, e.Field, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Path)
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new ConfigError.
func NewConfigError(typ ConfigErrorType, path, message string) *ConfigError {
	return &ConfigError{
		Type:    typ,
		Path:    path,
		Message: message,
	}
}

// NewConfigErrorWithField creates a new ConfigError with a field name.
func NewConfigErrorWithField(typ ConfigErrorType, path, field, message string) *ConfigError {
	return &ConfigError{
		Type:    typ,
		Path:    path,
		Field:   field,
		Message: message,
	}
}

// NewConfigErrorWithCause creates a new ConfigError with a cause.
func NewConfigErrorWithCause(typ ConfigErrorType, path, message string, cause error) *ConfigError {
	return &ConfigError{
		Type:    typ,
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether err is a ConfigError of the given type.
func IsType(err error, typ ConfigErrorType) bool {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Type == typ
	}
	return false
}

// IsPathNotFound reports whether err is a PathNotFound error.
func IsPathNotFound(err error) bool { return IsType(err, PathNotFound) }

// IsConfigNotFound reports whether err is a ConfigNotFound error.
func IsConfigNotFound(err error) bool { return IsType(err, ConfigNotFound) }

// IsImportConfigError reports whether err is an ImportConfigError.
func IsImportConfigError(err error) bool { return IsType(err, ImportConfigFailed) }
