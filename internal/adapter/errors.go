package adapter

import "errors"

var (
	// ErrTransport covers every failure to obtain or read a response:
	// malformed URL, connect or read timeout, reset connection, short body.
	ErrTransport = errors.New("transport failure")

	ErrUnauthorized = errors.New("server rejected credentials")
	ErrForbidden    = errors.New("server denied access")
	ErrHTTPStatus   = errors.New("unexpected http status")
)
