package alphavantage

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure modes Alpha Vantage embeds in 200-OK
// bodies. Callers match them with errors.Is; the service layer translates
// them into its own error taxonomy.
var (
	// ErrBadRequest marks an explicit "Error Message" field (typically an
	// invalid symbol or malformed function call).
	ErrBadRequest = errors.New("alphavantage: request rejected")

	// ErrRateLimited marks the "Note" field the free tier returns once the
	// per-minute or per-day call budget is exhausted.
	ErrRateLimited = errors.New("alphavantage: rate limit exceeded")

	// ErrPremium marks the "Information" field returned when an endpoint
	// requires a premium subscription.
	ErrPremium = errors.New("alphavantage: premium subscription required")
)

// classify inspects the sentinel fields of a response envelope and returns
// the matching sentinel error, or nil for a usable payload.
//
// The order mirrors how the upstream populates the fields: an explicit error
// message wins over a rate-limit note, which wins over a premium notice.
func classify(env errorEnvelope) error {
	switch {
	case env.ErrorMessage != "":
		return fmt.Errorf("%w: %s", ErrBadRequest, env.ErrorMessage)
	case env.Note != "":
		return fmt.Errorf("%w: %s", ErrRateLimited, env.Note)
	case env.Information != "":
		return fmt.Errorf("%w: %s", ErrPremium, env.Information)
	default:
		return nil
	}
}
