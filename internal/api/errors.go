package api

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// ErrUnauthorized matches any *Error carrying a 401 status.
var ErrUnauthorized = errors.New("unauthorized")

// Error is the uniform failure returned by every Client method.
//
// Transport failures have StatusCode 0 and a wrapped Err. Backend failures
// carry the HTTP status and whatever message the envelope provided.
type Error struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("backend returned status %d: %v", e.StatusCode, e.Err)
	case e.Message != "":
		return fmt.Sprintf("backend error (%d): %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// Transport reports whether no response was received.
func (e *Error) Transport() bool {
	return e.StatusCode == 0
}

// UserMessage returns the backend's message, falling back to the first field
// error when the envelope only carried validation errors.
func (e *Error) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}

	if len(e.Fields) == 0 {
		return ""
	}

	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, f := range fields {
		if msgs := e.Fields[f]; len(msgs) > 0 {
			return msgs[0]
		}
	}
	return ""
}

// MessageOr returns the user-facing message carried by err, or fallback when
// err is not an *Error or carries no message.
func MessageOr(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if msg := apiErr.UserMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}
