package glean

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// defaultTimeout bounds a single vendor call end to end. Per-request
// context deadlines are the preferred control; this is the safety net.
const defaultTimeout = 60 * time.Second

// Client is the authenticated handle shared by every component wrapper.
// It is constructed once, is immutable afterwards, and performs no retries:
// a failed remote call is reported exactly once per invocation.
type Client struct {
	creds Credentials
	http  *resty.Client
}

// New constructs an authenticated Client.
//
// Instance, token and act-as email are taken from creds when set, otherwise
// from GLEAN_INSTANCE, GLEAN_API_TOKEN and GLEAN_ACT_AS. Construction fails
// with a configuration error when the resolved instance or token is empty
// or whitespace.
func New(creds Credentials, opts ...Option) (*Client, error) {
	resolved, err := resolveCredentials(creds)
	if err != nil {
		return nil, err
	}

	rc := resty.New().
		SetBaseURL(fmt.Sprintf("https://%s-be.glean.com/rest/api/v1", resolved.Instance)).
		SetAuthToken(resolved.APIToken).
		SetHeader("Content-Type", "application/json").
		SetTimeout(defaultTimeout)
	if resolved.ActAs != "" {
		rc.SetHeader("X-Glean-Act-As", resolved.ActAs)
	}
	// Correlation id for log matching across client and vendor.
	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	c := &Client{creds: resolved, http: rc}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, &Error{
				Kind:    KindConfiguration,
				Message: "failed to initialize Glean client",
				Err:     err,
			}
		}
	}
	return c, nil
}

// Instance returns the resolved tenant identifier.
func (c *Client) Instance() string { return c.creds.Instance }

// ActAs returns the resolved impersonation email, empty when unset.
func (c *Client) ActAs() string { return c.creds.ActAs }

func (c *Client) transport() http.RoundTripper {
	base := c.http.GetClient().Transport
	if base == nil {
		return http.DefaultTransport
	}
	return base
}
