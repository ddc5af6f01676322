package glean

// Functional options applied to a Client during construction in New.
// Kept in a standalone file so all available knobs are discoverable at a
// glance. Options must be deterministic and side-effect free.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPTimeout sets the total time budget for a single vendor call
// (connection, TLS handshake, redirects and reading the response). The
// value is handed straight to the transport; there is no retry on expiry.
// Must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.SetTimeout(d)
		return nil
	}
}

// WithBaseURL overrides the base URL derived from the instance name.
// Intended for tests and self-hosted deployments.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("base URL must not be empty")
		}
		c.http.SetBaseURL(u)
		return nil
	}
}

// WithTransport replaces the underlying HTTP transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) error {
		if rt == nil {
			return fmt.Errorf("transport must not be nil")
		}
		c.http.SetTransport(rt)
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response
// is dumped to the log when enabled is true.
//
// Dumps include headers and bodies (tokens, user data); do not enable in
// production environments.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.SetTransport(&debugTransport{base: c.transport()})
		}
		return nil
	}
}
