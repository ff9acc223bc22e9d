package domain

import "errors"

var (
	ErrInvalidSpec    = errors.New("invalid project spec")
	ErrMissingName    = errors.New("project name is required")
	ErrMissingSummary = errors.New("project summary is required")
	ErrInvalidStack   = errors.New("stack type must be frontend, backend or fullstack")
)
