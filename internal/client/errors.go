// ABOUTME: Typed REST errors that keep the failure kind, status and server message
// ABOUTME: Sentinels allow errors.Is matching per kind

package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a request failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnreachable
	KindUnauthorized
	KindNotFound
	KindInvalid
	KindServer
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindUnreachable:
		return "unreachable"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid request"
	case KindServer:
		return "server error"
	case KindDecode:
		return "bad response"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. An *Error matches the sentinel of its Kind.
var (
	ErrUnreachable  = errors.New("api unreachable")
	ErrUnauthorized = errors.New("api unauthorized")
	ErrNotFound     = errors.New("api resource not found")
	ErrInvalid      = errors.New("api rejected request")
	ErrServer       = errors.New("api server error")
	ErrDecode       = errors.New("api response malformed")
)

// GenericMessage is the user-facing sentence shown for any API failure.
const GenericMessage = "an error occurred while communicating with the API"

// Error is a failed API call.
type Error struct {
	Op      string // GET, POST, PUT, DELETE
	Path    string
	Kind    Kind
	Status  int    // 0 when no response was received
	Message string // server supplied message, if any
	Err     error  // underlying transport or decode error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s %s: %s", GenericMessage, e.Op, e.Path, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindUnreachable:
		return target == ErrUnreachable
	case KindUnauthorized:
		return target == ErrUnauthorized
	case KindNotFound:
		return target == ErrNotFound
	case KindInvalid:
		return target == ErrInvalid
	case KindServer:
		return target == ErrServer
	case KindDecode:
		return target == ErrDecode
	}
	return false
}

// kindForStatus maps an HTTP status code to an error kind.
func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity || status == http.StatusConflict:
		return KindInvalid
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}

// KindOf returns the kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// MessageOf returns the server supplied message of err, if any.
func MessageOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
