package errors

import (
	"errors"
	"fmt"
)

// Common error types for categorization and handling

var (
	// ErrInvalidSelection indicates a scheme position outside the ranked list
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrCatalogLoad indicates the scheme catalog could not be loaded
	ErrCatalogLoad = errors.New("catalog load failed")

	// ErrLookupUnavailable indicates an external lookup service failed or timed out
	ErrLookupUnavailable = errors.New("lookup service unavailable")
)

// WrapError wraps an error with context message
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context message
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsInvalidSelection checks if error is an invalid selection error
func IsInvalidSelection(err error) bool {
	return errors.Is(err, ErrInvalidSelection)
}

// IsLookupUnavailable checks if error is a lookup unavailable error
func IsLookupUnavailable(err error) bool {
	return errors.Is(err, ErrLookupUnavailable)
}
