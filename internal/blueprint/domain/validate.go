package domain

import (
	"fmt"
	"strings"
)

// Validate checks the minimum shape a spec must have before the engines
// run. The engines themselves are total over any well-typed spec; anything
// rejected here is a caller error, not an engine failure.
func (s *Spec) Validate() error {
	if strings.TrimSpace(s.Meta.ProjectName) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSpec, ErrMissingName)
	}
	if strings.TrimSpace(s.Meta.Summary) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSpec, ErrMissingSummary)
	}
	switch s.Stack.Type {
	case StackFrontend, StackBackend, StackFullstack:
	default:
		return fmt.Errorf("%w: %w (got %q)", ErrInvalidSpec, ErrInvalidStack, s.Stack.Type)
	}
	return nil
}
