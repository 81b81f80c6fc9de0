package apperr

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Kind classifies a failure so handlers can map it to a status code
// without inspecting error text.
type Kind int

const (
	KindValidation  Kind = iota // 400: malformed or missing input
	KindAuth                    // 401: bad credentials or unapproved account
	KindForbidden               // 403: authenticated but not allowed
	KindNotFound                // 404: missing entity
	KindPersistence             // 500: any other data-access failure
	KindUnavailable             // 503: connection pool exhaustion / timeouts
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps the kind to its HTTP status code
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return 400
	case KindAuth:
		return 401
	case KindForbidden:
		return 403
	case KindNotFound:
		return 404
	case KindUnavailable:
		return 503
	default:
		return 500
	}
}

func Validation(msg string) *Error  { return &Error{Kind: KindValidation, Msg: msg} }
func Auth(msg string) *Error       { return &Error{Kind: KindAuth, Msg: msg} }
func Forbidden(msg string) *Error  { return &Error{Kind: KindForbidden, Msg: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Msg: msg} }
func Persistence(err error) *Error { return &Error{Kind: KindPersistence, Msg: "database error", Err: err} }

// FromDB classifies a data-access error into an *Error. Record-not-found
// becomes 404 and context deadline/cancellation (the shape a saturated pool
// takes when acquisition times out) becomes 503; everything else is a
// generic persistence failure.
func FromDB(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Kind: KindNotFound, Msg: "record not found", Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &Error{Kind: KindUnavailable, Msg: "database unavailable", Err: err}
	}
	return Persistence(err)
}
