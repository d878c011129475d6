// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed caller input or a structural invariant
// violation (e.g. mismatched use-case and resource lists). Surfaced to HTTP
// callers as a 4xx outcome.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// MissingFieldError reports absent required top-level fields in a report
// document. The renderer raises it before any layout work begins.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// SummarizationError wraps a failure of the overview summarization backend.
// Not caught locally: it aborts the run with a 5xx outcome.
type SummarizationError struct {
	Err error
}

func (e *SummarizationError) Error() string { return "summarization failed: " + e.Err.Error() }
func (e *SummarizationError) Unwrap() error { return e.Err }

// GenerationError wraps a failure of the use-case generation backend,
// including unparseable responses. Aborts the run like SummarizationError.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return "use case generation failed: " + e.Err.Error() }
func (e *GenerationError) Unwrap() error { return e.Err }
