package response

import (
	"fmt"
	"net/http"
)

// Client-facing error details. These strings are part of the API contract.
const (
	DetailInvalidInput       = "Invalid input. Please check the username or query parameters."
	DetailTimeout            = "GitHub API timed out."
	DetailTransport          = "Error communicating with GitHub API."
	DetailRateLimited        = "Rate limit exceeded. Please try again later."
	DetailUpstreamStatus     = "Error fetching gists from GitHub."
	DetailInvalidResponse    = "Invalid response from GitHub API."
	DetailInternal           = "Internal server error. Please try again later."
	DetailMethodNotAllowed   = "Method Not Allowed"
	detailUserNotFoundFormat = "GitHub user '%s' not found."
	detailNoGistsFormat      = "No gists found for GitHub user '%s'."
)

// Error is an already-classified failure: the status code and detail are
// sent to the client as-is.
type Error struct {
	Code   int    `json:"-"`
	Detail string `json:"detail"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Detail)
}

func NewError(code int, detail string) *Error {
	return &Error{
		Code:   code,
		Detail: detail,
	}
}

func ErrInvalidInput() *Error {
	return NewError(http.StatusUnprocessableEntity, DetailInvalidInput)
}

func ErrUserNotFound(username string) *Error {
	return NewError(http.StatusNotFound, fmt.Sprintf(detailUserNotFoundFormat, username))
}

func ErrNoGists(username string) *Error {
	return NewError(http.StatusNotFound, fmt.Sprintf(detailNoGistsFormat, username))
}

func ErrInternal() *Error {
	return NewError(http.StatusInternalServerError, DetailInternal)
}
