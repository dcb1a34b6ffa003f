package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for TMDB API responses. A *Error matches them with errors.Is.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthorized    = errors.New("unauthorized: invalid api key")
	ErrRateLimited     = errors.New("rate limited: too many requests")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrorKind tells which stage of a call failed.
type ErrorKind int

const (
	KindTransport ErrorKind = iota + 1 // request could not be sent or the body not read
	KindStatus                         // server answered with a non-2xx status
	KindDecode                         // body was not the expected JSON shape
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is returned by every endpoint method when a call fails.
type Error struct {
	Kind     ErrorKind
	Endpoint string // request path without query, e.g. "/tv/1418"

	// StatusCode is the HTTP status. Zero for transport failures.
	StatusCode int
	// Code and Message mirror TMDB's status_code and status_message when the
	// error body carried them.
	Code    int
	Message string

	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		if e.Message != "" {
			return fmt.Sprintf("tmdb %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
		}
		return fmt.Sprintf("tmdb %s: status %d", e.Endpoint, e.StatusCode)
	case KindDecode:
		return fmt.Sprintf("tmdb %s: decode response: %v", e.Endpoint, e.Err)
	default:
		return fmt.Sprintf("tmdb %s: %v", e.Endpoint, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is maps HTTP statuses onto the package sentinels.
func (e *Error) Is(target error) bool {
	if e.Kind != KindStatus {
		return false
	}
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not a
// status failure from this package.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// statusBody is TMDB's error envelope.
type statusBody struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       *bool  `json:"success"`
}
