package mood

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTags is returned when a classification carries zero usable
	// mood tags, so a catalog query would be unfiltered.
	ErrNoTags = errors.New("mood: classifier returned no usable tags")

	// ErrNoMatchFound is returned when no scored candidate is available
	// for character matching.
	ErrNoMatchFound = errors.New("mood: no scored candidate available")

	// ErrEmptyResponse is returned when the provider answered 2xx but
	// the envelope carried no content.
	ErrEmptyResponse = errors.New("mood: provider returned no content")
)

// ValidationError rejects bad input before any network call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "mood: " + e.Reason
}

// ProviderError wraps a failed call to the LLM endpoint.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("mood: %s: provider call failed: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// MalformedResponseError means the provider returned content that is not
// valid strict JSON for the requested contract. The raw text is never
// propagated to callers.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mood: malformed provider response: %s: %v", e.Reason, e.Err)
	}
	return "mood: malformed provider response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
