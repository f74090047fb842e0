package services

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument means no usable text came out of the uploaded file; the
// extractor refuses to spend a model call on it.
var ErrEmptyDocument = errors.New("no text could be extracted from the document")

// TransportError is a network or HTTP-level failure reaching the model
// endpoint. The upstream body is kept for logging only, never returned to
// API callers.
type TransportError struct {
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("claude API request failed with status %d", e.Status)
	}
	return fmt.Sprintf("claude API request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError means the model replied but its text could not be
// recovered as JSON, neither directly nor from a fenced block.
type MalformedResponseError struct {
	Raw string
}

func (e *MalformedResponseError) Error() string {
	return "could not parse JSON from model response"
}

// ExtractionError makes the whole extraction stage unusable, e.g. the
// document is confidently not a resume or the model output never parsed.
type ExtractionError struct {
	Reason      string
	RawResponse string
}

func (e *ExtractionError) Error() string {
	return e.Reason
}

// ValidationError reports a violated caller precondition.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
