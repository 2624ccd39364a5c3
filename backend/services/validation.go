// ABOUTME: Input validation functions for API parameters
// ABOUTME: Rejects malformed model names and out-of-range projection horizons

package services

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// maxModelNameLength bounds model names accepted from clients
const maxModelNameLength = 128

// sanitizeForLog removes control characters from strings to prevent log injection
// when including user input in error messages
func sanitizeForLog(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1 // Remove control characters
		}
		return r
	}, s)
}

// ValidateModelName checks a client-supplied model name. Empty is allowed
// and means nothing is selected yet.
func ValidateModelName(name string) error {
	if !utf8.ValidString(name) {
		return fmt.Errorf("model name must be valid UTF-8")
	}
	if len(name) > maxModelNameLength {
		return fmt.Errorf("model name exceeds %d bytes", maxModelNameLength)
	}
	if sanitizeForLog(name) != name {
		return fmt.Errorf("model name contains control characters: %q", sanitizeForLog(name))
	}
	return nil
}

// ValidateUtilizationHours rejects negative, NaN and infinite hours.
// Zero passes; it means nothing is selected yet.
func ValidateUtilizationHours(hours float64) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidUtilization, hours)
	}
	return nil
}

// ValidateHorizon rejects negative horizons and, when maxMonths > 0, horizons above it
func ValidateHorizon(months, maxMonths int) error {
	if months < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidHorizon, months)
	}
	if maxMonths > 0 && months > maxMonths {
		return fmt.Errorf("%w: %d exceeds maximum of %d months", ErrInvalidHorizon, months, maxMonths)
	}
	return nil
}
