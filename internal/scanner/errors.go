// Package scanner - Custom error types for better error handling
package scanner

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrContextUnavailable indicates '<' or '>' did not survive the round trip
	ErrContextUnavailable = errors.New("HTML context not available")

	// ErrPhaseExhausted indicates every candidate of a phase was filtered
	ErrPhaseExhausted = errors.New("all candidates filtered")
)

// PhaseError reports the phase that ended a run early
type PhaseError struct {
	Phase  Phase
	Target string
	Cause  error
}

// Error implements the error interface
func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Phase, truncateString(e.Target, 50), e.Cause)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *PhaseError) Unwrap() error {
	return e.Cause
}

func newPhaseError(phase Phase, target string, cause error) *PhaseError {
	return &PhaseError{Phase: phase, Target: target, Cause: cause}
}

// truncateString truncates a string to maxLen characters
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// ErrorAggregator collects non-fatal errors so they end up in the report.
// It is owned by a single run and not safe for concurrent use.
type ErrorAggregator struct {
	errors []error
}

// NewErrorAggregator creates a new error aggregator instance.
func NewErrorAggregator() *ErrorAggregator {
	return &ErrorAggregator{
		errors: make([]error, 0),
	}
}

// Add appends an error to the aggregator if it's not nil.
func (ea *ErrorAggregator) Add(err error) {
	if err == nil {
		return
	}
	ea.errors = append(ea.errors, err)
}

// AddWithContext adds an error with additional context information.
func (ea *ErrorAggregator) AddWithContext(context string, err error) {
	if err == nil {
		return
	}
	ea.Add(fmt.Errorf("%s: %w", context, err))
}

// Errors returns a copy of all collected errors.
func (ea *ErrorAggregator) Errors() []error {
	if len(ea.errors) == 0 {
		return nil
	}

	result := make([]error, len(ea.errors))
	copy(result, ea.errors)
	return result
}

// Strings returns the collected error messages
func (ea *ErrorAggregator) Strings() []string {
	var messages []string
	for _, err := range ea.Errors() {
		messages = append(messages, err.Error())
	}
	return messages
}

// Count returns the number of collected errors.
func (ea *ErrorAggregator) Count() int {
	return len(ea.errors)
}
