package adapter

import (
	"fmt"
	"net/http"
)

// StatusError maps a non-2xx response to one of the sentinel errors of this
// package. It returns nil for 2xx responses.
func StatusError(resp *Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return mapHTTPError(resp.StatusCode)
}

func mapHTTPError(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %d", ErrUnauthorized, status)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %d", ErrForbidden, status)
	default:
		return fmt.Errorf("%w: %d %s", ErrHTTPStatus, status, http.StatusText(status))
	}
}
