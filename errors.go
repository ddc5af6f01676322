package glean

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/gleanwork/langchain-glean/internal/api"
)

// Kind discriminates the failure classes surfaced by this package.
//
// Authentication, NotFound, RateLimit and Timeout are all "remote call
// failed" variants of the generic API kind, distinguished for caller
// convenience only; none of them triggers different recovery logic here.
type Kind int

const (
	// KindAPI is a vendor call failure with no more specific signal.
	KindAPI Kind = iota
	// KindConfiguration means credentials are missing or malformed.
	KindConfiguration
	// KindValidation means the caller-supplied input is malformed.
	KindValidation
	KindAuthentication
	KindNotFound
	KindRateLimit
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindAPI:
		return "api"
	case KindConfiguration:
		return "configuration"
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindRateLimit:
		return "rate_limit"
	case KindTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error is the single typed error crossing the package boundary. Callers
// inspect it with errors.As plus the Kind field, or the Is* helpers below.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int            // HTTP status, 0 when unknown
	ErrorType  string         // vendor error tag, when present
	Details    map[string]any // additional context, may be nil
	Err        error          // wrapped original error
}

func (e *Error) Error() string {
	parts := []string{e.Message}
	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status: %d", e.StatusCode))
	}
	if e.ErrorType != "" {
		parts = append(parts, fmt.Sprintf("type: %s", e.ErrorType))
	}
	return strings.Join(parts, " | ")
}

// Unwrap returns the original error for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

var _ error = (*Error)(nil)

func kindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool { k, ok := kindOf(err); return ok && k == KindConfiguration }

// IsValidation reports whether err is an input validation error.
func IsValidation(err error) bool { k, ok := kindOf(err); return ok && k == KindValidation }

// IsAuthentication reports whether err is an authentication failure.
func IsAuthentication(err error) bool { k, ok := kindOf(err); return ok && k == KindAuthentication }

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool { k, ok := kindOf(err); return ok && k == KindNotFound }

// IsRateLimit reports whether err is a rate-limit failure.
func IsRateLimit(err error) bool { k, ok := kindOf(err); return ok && k == KindRateLimit }

// IsTimeout reports whether err is a timeout failure.
func IsTimeout(err error) bool { k, ok := kindOf(err); return ok && k == KindTimeout }

// Classify converts an error raised by a vendor call into an *Error.
//
// Vendor HTTP failures are mapped by status code and lower-cased message
// text, in this precedence order: authentication (401 / "authentication" /
// "unauthorized"), not-found (404 / "not found"), rate-limit (429 /
// "rate limit" / "too many requests"), timeout ("timeout"), generic API.
// Anything that is not a vendor failure wraps as a generic API error with
// an "unexpected error" message prefix. Classify is pure: no logging, no
// side effects.
func Classify(err error, context string) *Error {
	var he *api.HTTPError
	if errors.As(err, &he) {
		msg := fmt.Sprintf("Glean API error%s: %v", inContext(context), err)
		lower := strings.ToLower(err.Error())
		kind := KindAPI
		switch {
		case he.StatusCode == 401 || strings.Contains(lower, "authentication") || strings.Contains(lower, "unauthorized"):
			kind = KindAuthentication
		case he.StatusCode == 404 || strings.Contains(lower, "not found"):
			kind = KindNotFound
		case he.StatusCode == 429 || strings.Contains(lower, "rate limit") || strings.Contains(lower, "too many requests"):
			kind = KindRateLimit
		case strings.Contains(lower, "timeout"):
			kind = KindTimeout
		}
		return &Error{
			Kind:       kind,
			Message:    msg,
			StatusCode: he.StatusCode,
			Details:    map[string]any{"body": he.Body},
			Err:        err,
		}
	}
	return &Error{
		Kind:    KindAPI,
		Message: fmt.Sprintf("unexpected error%s: %v", inContext(context), err),
		Err:     err,
	}
}

func inContext(context string) string {
	if context == "" {
		return ""
	}
	return " in " + context
}

// handleAPIError classifies err and logs it at a severity chosen by kind.
// Classification itself stays pure; this is the one place log output happens.
func handleAPIError(err error, context string) *Error {
	ce := Classify(err, context)
	switch ce.Kind {
	case KindAuthentication, KindConfiguration:
		log.Error().Err(ce).Msg("configuration/authentication error")
	case KindRateLimit:
		log.Warn().Err(ce).Msg("rate limit exceeded")
	case KindNotFound:
		log.Info().Err(ce).Msg("resource not found")
	default:
		log.Error().Err(ce).Msg("api error")
	}
	return ce
}
