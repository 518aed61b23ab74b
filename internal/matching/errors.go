// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package matching

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned when a request exceeds its time budget.
	// Partial results are never returned alongside it.
	ErrTimeout = errors.New("matching timed out")

	// ErrCanceled is returned when the caller's context is canceled before
	// scoring finishes. It wraps context.Canceled.
	ErrCanceled = errors.New("matching canceled")

	// ErrCandidatePanic marks a recovered panic in one candidate's pipeline.
	ErrCandidatePanic = errors.New("candidate scoring panicked")
)

// ValidationError reports a malformed request or profile field.
type ValidationError struct {
	Field   string
	Message string

	// Err is the underlying cause when the failure came from a
	// RequestValidator.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
