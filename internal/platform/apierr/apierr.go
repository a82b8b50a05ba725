package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API error independently of the HTTP status it maps to.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindUpstream   Kind = "upstream"
)

type Error struct {
	Status int
	Code   string
	Kind   Kind
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Kind: kindForStatus(status), Err: err}
}

// BadRequest reports a malformed or empty client input.
func BadRequest(code, msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Kind: KindValidation, Err: errors.New(msg)}
}

// NotFound reports a missing entity or collection. msg is shown to the client as-is.
func NotFound(code, msg string) *Error {
	return &Error{Status: http.StatusNotFound, Code: code, Kind: KindNotFound, Err: errors.New(msg)}
}

// Conflict reports a business-rule violation. It surfaces as 400 so clients
// keep treating it like any other rejected input.
func Conflict(code, msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Kind: KindConflict, Err: errors.New(msg)}
}

// Upstream wraps a backing store failure. The cause is kept for logging only.
func Upstream(code string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: code, Kind: KindUpstream, Err: err}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) && ae != nil {
		return ae, true
	}
	return nil, false
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	ae, ok := As(err)
	return ok && ae.Kind == kind
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindUpstream
	}
}
