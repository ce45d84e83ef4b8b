package app

import (
	"errors"
	"fmt"
	"time"
)

// InvalidRequestError is special error type returned when any request params are invalid.
type InvalidRequestError string

// Error implements error interface.
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request.
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	var ire invalidReqErr
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// TooManyRequestsError is returned when outgoing call couldn't fit in the rate limit.
type TooManyRequestsError string

// Error implements error interface.
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// UpstreamStatusError is returned when github api responds with non 2xx status.
type UpstreamStatusError struct {
	StatusCode int
	// RateLimited is set when github reported no remaining requests in current window.
	RateLimited bool
}

// Error implements error interface.
func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("GitHub API %d", e.StatusCode)
}

// TimeoutError is returned by Bounded when operation didn't finish in time.
type TimeoutError struct {
	Timeout time.Duration
}

// Error implements error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("Operation timed out after %dms", e.Timeout.Milliseconds())
}

// IsTimeoutError checks if given error is caused by bounded operation timeout.
func IsTimeoutError(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}
