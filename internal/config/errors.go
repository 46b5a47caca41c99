package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrUnknownSetting indicates a setting that lesser does not define.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrTypeMismatch indicates the value type doesn't match the expected type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Field is the setting path that failed validation, e.g. "pager.queue_size".
	Field string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
	// Err is an optional underlying error.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("invalid setting %s: %s (value: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("invalid setting %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
