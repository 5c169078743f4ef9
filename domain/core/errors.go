package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownBody  = fmt.Errorf("%w: unknown body", ErrInvalidInput)
	ErrUnknownSign  = fmt.Errorf("%w: unknown sign", ErrInvalidInput)

	// Recoverable per-method conditions
	ErrInsufficientData     = errors.New("insufficient paired observations")
	ErrUndefinedCorrelation = errors.New("correlation undefined for zero-variance input")
	ErrDegradedScore        = errors.New("score computed via degraded fallback")

	// Run-level failures
	ErrNoValidMethods = errors.New("no correlation methods produced a valid result")

	// Collaborator failures, propagated unchanged
	ErrEphemerisUnavailable = errors.New("ephemeris data unavailable")
	ErrSampleNotFound       = errors.New("sample not found")
)

// Error constructors with context
func NewInvalidInputError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidInput, field, reason)
}

func NewInsufficientDataError(method string, got, want int) error {
	return fmt.Errorf("%w: method %s has %d observations, needs %d", ErrInsufficientData, method, got, want)
}

func NewEphemerisRangeError(year int) error {
	return fmt.Errorf("%w: year %d outside supported range", ErrEphemerisUnavailable, year)
}

func NewSampleNotFoundError(sampleID string) error {
	return fmt.Errorf("%w: %s", ErrSampleNotFound, sampleID)
}

// Error checking helpers
func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}

func IsUndefinedCorrelation(err error) bool {
	return errors.Is(err, ErrUndefinedCorrelation)
}

func IsDegradedScore(err error) bool {
	return errors.Is(err, ErrDegradedScore)
}
