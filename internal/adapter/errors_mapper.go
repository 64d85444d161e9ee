package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError maps a non-2xx response to a status sentinel. message is the
// server-provided envelope message; the status text is used when it is empty.
func mapHTTPError(resp *resty.Response, message string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), message)
	}
}
