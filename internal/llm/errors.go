package llm

import "errors"

var (
	// ErrNotConfigured is returned when no generation credential is
	// present. Callers map it to a distinct "service unavailable" response
	// instead of a generic upstream failure.
	ErrNotConfigured = errors.New("text generation is not configured")

	// ErrEmptyCompletion is returned when the upstream call succeeds but
	// yields no usable text.
	ErrEmptyCompletion = errors.New("generation returned empty content")
)
