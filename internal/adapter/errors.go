package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoSessionCookie is returned when a login redirect carries no
	// session cookie.
	ErrNoSessionCookie = errors.New("no session cookie in login response")
)
