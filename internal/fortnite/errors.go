package fortnite

import (
	"errors"
	"fmt"
)

// ErrorKind classifies API client failures so callers can branch on
// the failure mode without string matching.
type ErrorKind string

const (
	// KindNetwork means the connectivity probe failed: the device is
	// offline, not merely that one request errored.
	KindNetwork ErrorKind = "network"
	// KindTimeout means the request was aborted at its deadline. Kept
	// distinct from network failures; a timed-out shop check must not
	// mutate notification state.
	KindTimeout ErrorKind = "timeout"
	// KindNotFound means the API answered with a non-2xx status.
	KindNotFound ErrorKind = "not_found"
	// KindMalformed means the body parsed as JSON but failed the
	// expected-shape check (e.g. search data is not an array).
	KindMalformed ErrorKind = "malformed_response"
	// KindParse means the body was not valid JSON at all.
	KindParse ErrorKind = "parse"
)

// APIError is the typed error surfaced for every client failure.
type APIError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

func newError(kind ErrorKind, message string, err error) *APIError {
	return &APIError{Kind: kind, Message: message, Err: err}
}

// KindOf returns the error's kind, or "" for non-API errors.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// IsTimeout reports whether err is a deadline abort.
func IsTimeout(err error) bool { return KindOf(err) == KindTimeout }

// IsNotFound reports whether err is a non-2xx API answer.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
