package errors

import (
	"errors"
	"fmt"
)

// NotSuccessfulError means the store API answered but reported success=false
// for the requested app (removed, region-locked, or never existed).
type NotSuccessfulError struct {
	AppID int
}

func (e *NotSuccessfulError) Error() string {
	return fmt.Sprintf("store API reported unsuccessful lookup for app %d", e.AppID)
}

// NewNotSuccessfulError creates a new NotSuccessfulError
func NewNotSuccessfulError(appID int) *NotSuccessfulError {
	return &NotSuccessfulError{AppID: appID}
}

// IsNotSuccessfulError reports whether err is a NotSuccessfulError (even when wrapped).
func IsNotSuccessfulError(err error) bool {
	var nsErr *NotSuccessfulError
	return errors.As(err, &nsErr)
}

// ParseError is an unexpected JSON shape in an otherwise successful response.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected payload at %q: %s", e.Path, e.Reason)
}

// NewParseError creates a new ParseError for the given JSON path
func NewParseError(path, reason string) *ParseError {
	return &ParseError{Path: path, Reason: reason}
}

// IsParseError reports whether err is a ParseError (even when wrapped).
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
