package pricing

import (
	"errors"
	"fmt"
)

// ValidationError reports caller-supplied input that cannot be priced.
// The caller can recover by correcting the request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// ConfigurationError reports a rate-table gap for the requested combination.
// It is fatal for the request and signals a product-configuration problem,
// never something to default around.
type ConfigurationError struct {
	Key     string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Key, e.Message)
}

func NewConfigurationError(key, msg string) error {
	return &ConfigurationError{Key: key, Message: msg}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConfigurationError reports whether err is (or wraps) a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
