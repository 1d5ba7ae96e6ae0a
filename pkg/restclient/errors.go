package restclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// TransportError reports a request that never produced an HTTP response:
// timeouts, DNS failures, refused connections, cancelled contexts.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was a timeout.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// HTTPStatusError reports a non-2xx response.
type HTTPStatusError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("http status %d: %s", e.StatusCode, e.Message)
}

// NotFound reports whether the backend answered 404.
func (e *HTTPStatusError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// MalformedResponseError reports a 2xx response whose body could not be
// decoded or misses required fields.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsMalformed reports whether err is a MalformedResponseError.
func IsMalformed(err error) bool {
	var target *MalformedResponseError
	return errors.As(err, &target)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an
// HTTPStatusError.
func StatusCode(err error) int {
	var target *HTTPStatusError
	if errors.As(err, &target) {
		return target.StatusCode
	}
	return 0
}
