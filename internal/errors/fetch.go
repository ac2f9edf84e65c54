package errors

import (
	"errors"
	"fmt"
)

// FetchError is a failure to obtain a usable response from the store API:
// network errors, timeouts, unexpected status codes and malformed bodies.
type FetchError struct {
	AppID      int
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch app %d: HTTP %d: %v", e.AppID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch app %d: %v", e.AppID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError
func NewFetchError(appID, statusCode int, err error) *FetchError {
	return &FetchError{AppID: appID, StatusCode: statusCode, Err: err}
}

// IsFetchError reports whether err is a fetch failure. Rate limiting counts as one.
func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) || IsRateLimitError(err)
}
