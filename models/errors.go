package models

import "fmt"

// ErrorNotFound covers both a missing row and a row hidden by the visibility
// policy; callers cannot tell the two apart.
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

// ErrorConflict reports a uniqueness violation. Duplicate subscriptions,
// favorites and channel names are idempotent from the caller's perspective, so
// handlers report this as a benign outcome rather than a failure.
type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string {
	return e.Message
}

// ErrorFieldTooLong carries the violated field and its maximum so the caller
// can retry with truncated input.
type ErrorFieldTooLong struct {
	Field string
	Max   int
}

func (e ErrorFieldTooLong) Error() string {
	return fmt.Sprintf("%s exceeds maximum length of %d", e.Field, e.Max)
}

type ErrorInvalidInput struct {
	Message string
}

func (e ErrorInvalidInput) Error() string {
	return e.Message
}
