package fetch

import "fmt"

// ConnectionError covers DNS failures, refused connections, and TLS
// handshake failures. It is the only class of failure that triggers the
// https-to-http scheme fallback.
type ConnectionError struct {
	URL   string
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("could not connect to %s: %v", e.URL, e.Cause)
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

// TimeoutError indicates the request exceeded the client's timeout.
type TimeoutError struct {
	URL   string
	Cause error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out: %v", e.URL, e.Cause)
}

func (e *TimeoutError) Unwrap() error { return e.Cause }

// StatusError indicates a non-2xx response. Definite: the scheme fallback
// does not apply, since the other scheme would not change the outcome.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.Code)
}

// ContentTypeError indicates the response was not an HTML document.
// Returned before any body extraction is attempted.
type ContentTypeError struct {
	URL         string
	ContentType string
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("%s returned non-HTML content: %s", e.URL, e.ContentType)
}

// InvalidURLError indicates the user input could not be resolved into an
// http(s) URL at all.
type InvalidURLError struct {
	Input string
	Cause error
}

func (e *InvalidURLError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid URL %q: %v", e.Input, e.Cause)
	}
	return fmt.Sprintf("invalid URL %q", e.Input)
}

func (e *InvalidURLError) Unwrap() error { return e.Cause }
