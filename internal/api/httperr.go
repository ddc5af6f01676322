package api

import "fmt"

// HTTPError is returned for any non-2xx vendor response. It preserves the
// status code and response body so callers can classify the failure.
type HTTPError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("glean: %s failed: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("glean: %s failed: status %d", e.Op, e.StatusCode)
}
