package adapter

import "errors"

var (
	// ErrNetwork marks transport-level failures: the origin could not be
	// reached at all.
	ErrNetwork = errors.New("network error")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServerError         = errors.New("server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)
