package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-eas-sync/models"
)

// Failure taxonomy of the sync engine. Match with [errors.Is].
var (
	// ErrIO is the base of every failure that ends a worker with an
	// IO-error exit status.
	ErrIO = errors.New("sync io failure")

	// ErrTransportFailure is an [ErrIO] raised when no usable response could
	// be obtained: malformed URL, timeouts, reset connections, short bodies.
	ErrTransportFailure = fmt.Errorf("%w: transport", ErrIO)

	// ErrProtocolViolation is an [ErrIO] raised when the server answers in a
	// way the command does not allow: chunked or empty Ping replies, a
	// missing version header, an unparsable document.
	ErrProtocolViolation = fmt.Errorf("%w: protocol violation", ErrIO)

	// ErrAuthenticationFailure is raised on HTTP 401/403. It is fatal to the
	// session and never retried.
	ErrAuthenticationFailure = errors.New("authentication failure")

	// ErrStaleFolderList is a control signal, not a failure: the folder
	// hierarchy changed and FolderSync must run before anything else.
	ErrStaleFolderList = errors.New("folder list is stale")
)

func transportFailure(cmd string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTransportFailure, cmd, err)
}

func protocolViolation(cmd, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrProtocolViolation, cmd, fmt.Sprintf(format, args...))
}

// authFailure is both an [ErrAuthenticationFailure] and an [ErrIO], so loops
// that unwind on IO failures unwind on it too.
func authFailure(cmd string, status int) error {
	return fmt.Errorf("%w: %s: http %d: %w", ErrAuthenticationFailure, cmd, status, ErrIO)
}

// ExitStatusFor maps the terminal error of a worker to its exit status.
func ExitStatusFor(err error) models.ExitStatus {
	switch {
	case err == nil,
		errors.Is(err, context.Canceled),
		errors.Is(err, ErrStaleFolderList):
		return models.ExitDone
	case errors.Is(err, ErrAuthenticationFailure):
		return models.ExitLoginFailure
	case errors.Is(err, ErrIO):
		return models.ExitIOError
	default:
		return models.ExitException
	}
}
