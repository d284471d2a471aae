package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

// Common catalog API errors, matched with errors.Is against an *APIError.
var (
	// ErrUnauthorized is returned when the API key is rejected.
	ErrUnauthorized = errors.New("unauthorized: check your TMDB API key")
	// ErrNotFound is returned when the resource does not exist.
	ErrNotFound = errors.New("not found")
)

// NetworkError reports that no usable response arrived.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("tmdb API error %d", e.StatusCode)
	}
	return fmt.Sprintf("tmdb API error %d: %s", e.StatusCode, e.Body)
}

// Is lets errors.Is match the status-specific sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// ParseError reports a response body that could not be decoded.
type ParseError struct {
	Endpoint string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decoding %s response: %v", e.Endpoint, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
