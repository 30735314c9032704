package app

import "errors"

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
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

// TooManyRequestsError is special error type returned when call rate limits are exhausted
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequests tells that this error is 'too many requests'.
// Returns always true.
func (TooManyRequestsError) IsTooManyRequests() bool {
	return true
}

// UpstreamError is special error type returned when a dependency fetch
// failed or returned a non-success status
type UpstreamError string

// Error implements error interface
func (e UpstreamError) Error() string {
	return string(e)
}

// IsUpstream tells that this error is caused by an upstream dependency.
// Returns always true.
func (UpstreamError) IsUpstream() bool {
	return true
}

// IsUpstreamError checks if given error is caused by an upstream failure
func IsUpstreamError(err error) bool {
	type upstreamErr interface {
		IsUpstream() bool
	}

	var ue upstreamErr
	if errors.As(err, &ue) {
		return ue.IsUpstream()
	}

	return false
}
