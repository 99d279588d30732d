package core

import (
	"errors"
	"regexp"
)

// ErrNotFound is a sentinel error for "not found" cases
var ErrNotFound = errors.New("not found")

// ErrNotConfigured is a sentinel error returned when an integration's
// credentials or IDs are missing. Calls short-circuit on it without
// touching the network.
var ErrNotConfigured = errors.New("not configured")

// ErrWidgetDisabled marks the guild widget being administratively disabled
// (a 204 from the widget endpoint). It is an expected condition, not a
// transport failure.
var ErrWidgetDisabled = errors.New("widget is disabled for this server")

// ErrUpstream marks a non-2xx response from an upstream service that is
// not covered by a more specific sentinel.
var ErrUpstream = errors.New("upstream error")

// IsNotFoundError checks if an error is a "not found" error
// This function handles both the ErrNotFound sentinel error and legacy string-based errors
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	// Check for the sentinel error
	if errors.Is(err, ErrNotFound) {
		return true
	}
	// Check for legacy string-based errors for backward compatibility
	return containsNotFound(err.Error())
}

// containsNotFound checks if an error message contains "not found"
func containsNotFound(errMsg string) bool {
	// Use case-insensitive matching for various "not found" formats
	return len(errMsg) > 0 && (regexp.MustCompile(`(?i)not found`).MatchString(errMsg))
}
