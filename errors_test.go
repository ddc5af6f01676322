package glean

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleanwork/langchain-glean/internal/api"
)

func TestClassify_ByStatusCode(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		want   Kind
		status int
	}{
		{"unauthorized", &api.HTTPError{Op: "search", StatusCode: 401}, KindAuthentication, 401},
		{"not found", &api.HTTPError{Op: "search", StatusCode: 404}, KindNotFound, 404},
		{"rate limited", &api.HTTPError{Op: "search", StatusCode: 429}, KindRateLimit, 429},
		{"server error", &api.HTTPError{Op: "search", StatusCode: 500}, KindAPI, 500},
		{"timeout body", &api.HTTPError{Op: "search", StatusCode: 408, Body: "request timeout"}, KindTimeout, 408},
		{"rate message no status", &api.HTTPError{Op: "search", Body: "rate limit exceeded"}, KindRateLimit, 0},
		{"auth message", &api.HTTPError{Op: "chat", StatusCode: 400, Body: "authentication required"}, KindAuthentication, 400},
		{"rate message", &api.HTTPError{Op: "chat", StatusCode: 400, Body: "Too Many Requests"}, KindRateLimit, 400},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.err, "test")
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got.Kind)
			assert.Equal(t, tc.status, got.StatusCode)
			assert.ErrorIs(t, got, tc.err)
		})
	}
}

func TestClassify_AuthenticationPrecedence(t *testing.T) {
	// A body mentioning both authentication and rate limiting classifies as
	// authentication.
	he := &api.HTTPError{Op: "chat", StatusCode: 400, Body: "unauthorized: rate limit check skipped"}
	got := Classify(he, "")
	assert.Equal(t, KindAuthentication, got.Kind)
}

func TestClassify_NonVendorError(t *testing.T) {
	plain := errors.New("connection refused")
	got := Classify(plain, "search")
	assert.Equal(t, KindAPI, got.Kind)
	assert.Contains(t, got.Message, "unexpected error in search")
	assert.Zero(t, got.StatusCode)
	assert.ErrorIs(t, got, plain)
}

func TestClassify_WrappedHTTPError(t *testing.T) {
	he := &api.HTTPError{Op: "search", StatusCode: 404}
	wrapped := fmt.Errorf("outer: %w", he)
	got := Classify(wrapped, "")
	assert.Equal(t, KindNotFound, got.Kind)
}

func TestErrorString(t *testing.T) {
	e := &Error{Kind: KindAPI, Message: "boom", StatusCode: 502, ErrorType: "BAD_GATEWAY"}
	assert.Equal(t, "boom | status: 502 | type: BAD_GATEWAY", e.Error())

	bare := &Error{Kind: KindValidation, Message: "bad input"}
	assert.Equal(t, "bad input", bare.Error())
}

func TestKindHelpers(t *testing.T) {
	assert.True(t, IsAuthentication(&Error{Kind: KindAuthentication}))
	assert.True(t, IsNotFound(fmt.Errorf("wrap: %w", &Error{Kind: KindNotFound})))
	assert.True(t, IsRateLimit(&Error{Kind: KindRateLimit}))
	assert.True(t, IsTimeout(&Error{Kind: KindTimeout}))
	assert.True(t, IsValidation(&Error{Kind: KindValidation}))
	assert.True(t, IsConfiguration(&Error{Kind: KindConfiguration}))
	assert.False(t, IsAuthentication(errors.New("plain")))
	assert.False(t, IsNotFound(&Error{Kind: KindAPI}))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "authentication", KindAuthentication.String())
	assert.Equal(t, "rate_limit", KindRateLimit.String())
	assert.Equal(t, "api", KindAPI.String())
}
