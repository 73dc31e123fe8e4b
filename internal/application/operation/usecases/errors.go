package usecases

import (
	"errors"

	subUsecases "siloops/internal/application/subscription/usecases"
)

// QuotaExceededError signals that operation creation was denied by the
// subscription quota. It carries the full admission decision so the
// transport layer can render plan, counter, and remaining quota.
type QuotaExceededError struct {
	Decision *subUsecases.AdmissionDecision
}

func (e *QuotaExceededError) Error() string {
	if e.Decision != nil && e.Decision.ErrorMessage != "" {
		return e.Decision.ErrorMessage
	}
	return "operation quota exceeded"
}

// AsQuotaExceeded unwraps a quota rejection from an error chain.
func AsQuotaExceeded(err error) (*QuotaExceededError, bool) {
	var qe *QuotaExceededError
	if errors.As(err, &qe) {
		return qe, true
	}
	return nil, false
}
