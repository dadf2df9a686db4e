package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error so controllers can pick the
// right HTTP status without inspecting messages.
type Kind int

const (
	KindAuth Kind = iota
	KindValidation
	KindPermission
	KindNotFound
	KindConflict
	KindRemote
	KindParse
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

func Auth(msg string) *Error       { return New(KindAuth, msg) }
func Validation(msg string) *Error { return New(KindValidation, msg) }
func Permission(msg string) *Error { return New(KindPermission, msg) }
func NotFound(msg string) *Error   { return New(KindNotFound, msg) }
func Conflict(msg string) *Error   { return New(KindConflict, msg) }

func Remote(msg string, err error) *Error { return &Error{Kind: KindRemote, Msg: msg, Err: err} }
func Parse(msg string, err error) *Error  { return &Error{Kind: KindParse, Msg: msg, Err: err} }

// KindOf reports the Kind of err, or KindRemote for anything that is
// not an *Error (unknown failures are treated as remote-call failures).
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindRemote
}

// HTTPStatus maps an error to the status its kind should surface as.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindAuth:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindPermission:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindParse:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
