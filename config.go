package glean

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Credentials identify a Glean tenant and the token used to call it.
//
// Any field left empty is resolved from its environment variable; an
// explicitly supplied value always wins over the environment.
type Credentials struct {
	// Instance is the Glean tenant/subdomain (e.g. "acme").
	Instance string `envconfig:"GLEAN_INSTANCE"`
	// APIToken is a user or global Glean API token.
	APIToken string `envconfig:"GLEAN_API_TOKEN"`
	// ActAs is the email to impersonate when using a global token.
	// Ignored for user tokens.
	ActAs string `envconfig:"GLEAN_ACT_AS"`
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// resolveCredentials fills empty fields from the environment and validates
// the result. Resolution happens once, at component construction; there is
// no global state.
func resolveCredentials(explicit Credentials) (Credentials, error) {
	var env Credentials
	if err := envconfig.Process("", &env); err != nil {
		return Credentials{}, &Error{
			Kind:    KindConfiguration,
			Message: "failed to read credentials from environment",
			Err:     err,
		}
	}

	out := explicit
	if blank(out.Instance) {
		out.Instance = env.Instance
	}
	if blank(out.APIToken) {
		out.APIToken = env.APIToken
	}
	if blank(out.ActAs) {
		out.ActAs = env.ActAs
	}

	if blank(out.Instance) {
		return Credentials{}, &Error{Kind: KindConfiguration, Message: "Glean instance is required"}
	}
	if blank(out.APIToken) {
		return Credentials{}, &Error{Kind: KindConfiguration, Message: "Glean API token is required"}
	}
	return out, nil
}
