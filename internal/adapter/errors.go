package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrServerUnreachable wraps transport failures: refused connections,
	// DNS errors and timeouts.
	ErrServerUnreachable = errors.New("server unreachable")
	ErrEmptyNoteID       = errors.New("empty note id")
)
