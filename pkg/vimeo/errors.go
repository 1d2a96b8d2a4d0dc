package vimeo

import (
	"errors"
	"fmt"
)

// APIError represents a failure reported by the API itself: a response
// envelope with stat "fail" carrying an error code and message.
type APIError struct {
	Code        string `json:"code"           yaml:"code"`
	Message     string `json:"msg"            yaml:"msg"`
	Explanation string `json:"expl,omitempty" yaml:"expl,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Explanation != "" {
		return fmt.Sprintf("%s: %s (code: %s)", e.Message, e.Explanation, e.Code)
	}

	return fmt.Sprintf("%s (code: %s)", e.Message, e.Code)
}

// HTTPError represents a non-2xx response from the transport layer.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d: %s", e.StatusCode, string(e.Body))
}

// Common API error codes (Advanced API v2).
const (
	ErrorCodeInvalidSignature   = "96"
	ErrorCodeInvalidConsumerKey = "97"
	ErrorCodeLoginFailed        = "98"
	ErrorCodePermissionDenied   = "99"
	ErrorCodeMethodNotFound     = "1"
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired              = errors.New("config is required")
	ErrConsumerCredentialsRequired = errors.New("consumer key and secret are required")
	ErrUnknownMethod               = errors.New("unknown API method")
	ErrTokenExchangeFailed         = errors.New("token exchange failed")
	ErrMissingUploadTicket         = errors.New("upload ticket missing endpoint or id")
	ErrCacheEntryNotFound          = errors.New("key not found in cache")
	ErrCacheEntryExpired           = errors.New("cache entry expired")
	ErrCacheDisabled               = errors.New("cache disabled")
)

// IsAPIFailure checks if the error is a failure reported by the API.
func IsAPIFailure(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// IsNotAuthenticated checks if the error is an authentication failure,
// either API-reported (login failed / permission denied) or a missing
// handshake step.
func IsNotAuthenticated(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeLoginFailed || apiErr.Code == ErrorCodePermissionDenied
	}

	return false
}
