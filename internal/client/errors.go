package client

import (
	"errors"
	"fmt"
	"net/http"
)

const providerName = "tvdb"

// ProviderError is a transport failure classified for callers that decide
// whether to retry.
type ProviderError struct {
	Provider   string
	Code       string
	Message    string
	Retry      bool
	RetryAfter int // Seconds to wait before retry
	Err        error
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is a non-2xx response.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("GET %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// mapError classifies a fetch failure. Decode failures are not passed here.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		return err
	}

	var se *HTTPStatusError
	if errors.As(err, &se) {
		switch {
		case se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden:
			return &ProviderError{
				Provider: providerName,
				Code:     "AUTH_FAILED",
				Message:  "TVDB authentication failed, check the API key",
				Err:      err,
			}
		case se.StatusCode == http.StatusNotFound:
			return &ProviderError{
				Provider: providerName,
				Code:     "NOT_FOUND",
				Message:  "TVDB has no record at " + se.URL,
				Err:      err,
			}
		case se.StatusCode == http.StatusTooManyRequests:
			return &ProviderError{
				Provider:   providerName,
				Code:       "RATE_LIMITED",
				Message:    "TVDB rate limit exceeded",
				Retry:      true,
				RetryAfter: 10,
				Err:        err,
			}
		case se.StatusCode >= 500:
			return &ProviderError{
				Provider:   providerName,
				Code:       "UNAVAILABLE",
				Message:    "TVDB service unavailable",
				Retry:      true,
				RetryAfter: 30,
				Err:        err,
			}
		}
	}

	return &ProviderError{
		Provider: providerName,
		Code:     "UNKNOWN",
		Message:  "TVDB error: " + err.Error(),
		Err:      err,
	}
}
