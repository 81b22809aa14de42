package utils

import (
	"errors"
	"fmt"
)

var (
	ErrCompletionFailed = errors.New("completion request failed")
	ErrEmptyCompletion  = errors.New("empty response from model")
	ErrInvalidModelJSON = errors.New("invalid JSON from model")
	ErrNoOptions        = errors.New("model did not return options")
)

// RawExcerptLimit caps how much raw model output an error may carry. The full
// payload never leaves the server.
const RawExcerptLimit = 300

// UpstreamError couples a completion failure class with a bounded excerpt of
// the raw model output for diagnostics.
type UpstreamError struct {
	Err error
	Raw string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%v (raw: %q)", e.Err, e.Raw)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError wraps err with an excerpt of raw truncated to RawExcerptLimit.
func NewUpstreamError(err error, raw string) *UpstreamError {
	if len(raw) > RawExcerptLimit {
		raw = raw[:RawExcerptLimit]
	}
	return &UpstreamError{Err: err, Raw: raw}
}
