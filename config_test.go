package glean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearGleanEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GLEAN_INSTANCE", "")
	t.Setenv("GLEAN_API_TOKEN", "")
	t.Setenv("GLEAN_ACT_AS", "")
}

func TestResolveCredentials_FromEnvironment(t *testing.T) {
	clearGleanEnv(t)
	t.Setenv("GLEAN_INSTANCE", "acme")
	t.Setenv("GLEAN_API_TOKEN", "env-token")
	t.Setenv("GLEAN_ACT_AS", "jane@acme.com")

	got, err := resolveCredentials(Credentials{})
	require.NoError(t, err)
	assert.Equal(t, "acme", got.Instance)
	assert.Equal(t, "env-token", got.APIToken)
	assert.Equal(t, "jane@acme.com", got.ActAs)
}

func TestResolveCredentials_ExplicitWinsOverEnvironment(t *testing.T) {
	clearGleanEnv(t)
	t.Setenv("GLEAN_INSTANCE", "env-instance")
	t.Setenv("GLEAN_API_TOKEN", "env-token")

	got, err := resolveCredentials(Credentials{Instance: "explicit", APIToken: "explicit-token"})
	require.NoError(t, err)
	assert.Equal(t, "explicit", got.Instance)
	assert.Equal(t, "explicit-token", got.APIToken)
}

func TestResolveCredentials_MissingInstance(t *testing.T) {
	clearGleanEnv(t)
	t.Setenv("GLEAN_API_TOKEN", "token")

	_, err := resolveCredentials(Credentials{})
	require.Error(t, err)
	assert.True(t, IsConfiguration(err))
	assert.Contains(t, err.Error(), "instance is required")
}

func TestResolveCredentials_WhitespaceTokenRejected(t *testing.T) {
	clearGleanEnv(t)

	_, err := resolveCredentials(Credentials{Instance: "acme", APIToken: "   "})
	require.Error(t, err)
	assert.True(t, IsConfiguration(err))
	assert.Contains(t, err.Error(), "token is required")
}

func TestNew_FailsWithoutCredentials(t *testing.T) {
	clearGleanEnv(t)

	_, err := New(Credentials{})
	require.Error(t, err)
	assert.True(t, IsConfiguration(err))
}

func TestNew_AppliesOptions(t *testing.T) {
	clearGleanEnv(t)

	c, err := New(
		Credentials{Instance: "acme", APIToken: "token", ActAs: "ops@acme.com"},
		WithBaseURL("http://localhost:1"),
	)
	require.NoError(t, err)
	assert.Equal(t, "acme", c.Instance())
	assert.Equal(t, "ops@acme.com", c.ActAs())
}

func TestNew_InvalidOptionIsConfigurationError(t *testing.T) {
	clearGleanEnv(t)

	_, err := New(
		Credentials{Instance: "acme", APIToken: "token"},
		WithHTTPTimeout(0),
	)
	require.Error(t, err)
	assert.True(t, IsConfiguration(err))
}
