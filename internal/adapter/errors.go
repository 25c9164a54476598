package adapter

import "errors"

// Transport errors mapped from HTTP status codes by mapHTTPError. The server's
// response body follows the sentinel, e.g. "unauthorized: token is expired".
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrNoToken is returned by authenticated calls made before Register or
	// Login stored a token.
	ErrNoToken = errors.New("no bearer token set")
)
