package domain

import (
	stderrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes surfaced to hosts. They are stable across transports.
const (
	ErrCodeOperationNotFound = "TEXTOPS_1001"
	ErrCodeInvalidToolName   = "TEXTOPS_1002"

	ErrCodeConfigParseError      = "CONFIG_1702"
	ErrCodeConfigValidationError = "CONFIG_1703"

	ErrCodeCacheError = "CACHE_1801"
)

// NewOperationNotFoundError is returned when a host asks for an unregistered operation.
func NewOperationNotFoundError(name string) *errors.Error {
	return errors.New(ErrCodeOperationNotFound, "Operation not found").
		WithUserMessage("operation not found: "+name).
		WithContext("operation", name).
		WithSeverity("error")
}

// NewInvalidToolNameError is returned when registering a tool without a usable name.
func NewInvalidToolNameError(name string) *errors.Error {
	return errors.New(ErrCodeInvalidToolName, "Invalid tool name").
		WithUserMessage("Tool name is required and cannot be empty").
		WithContext("provided_name", name).
		WithSeverity("error")
}

// NewConfigParseError wraps a failure to read or decode a configuration source.
func NewConfigParseError(path string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeConfigParseError, "Configuration parse error").
		WithUserMessage("Configuration file could not be parsed").
		WithContext("path", path).
		WithSeverity("error")
}

// NewConfigValidationError reports a configuration value outside its allowed set.
func NewConfigValidationError(field string, value any, reason string) *errors.Error {
	return errors.New(ErrCodeConfigValidationError, "Configuration validation error").
		WithUserMessage(field+": "+reason).
		WithContext("field", field).
		WithContext("value", value).
		WithSeverity("error")
}

// NewCacheError wraps a result cache backend failure.
func NewCacheError(op string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeCacheError, "Result cache error").
		WithContext("op", op).
		WithSeverity("warning").
		AsRetryable()
}

// ErrorCode returns the host-facing code carried by err, or "" when err has none.
func ErrorCode(err error) string {
	var coded *errors.Error
	if stderrors.As(err, &coded) {
		return string(coded.ErrorCode())
	}
	return ""
}

// UserMessage returns the host-facing message carried by err, falling back to err.Error().
func UserMessage(err error) string {
	var coded *errors.Error
	if stderrors.As(err, &coded) && coded.UserMessage() != "" {
		return coded.UserMessage()
	}
	return err.Error()
}
