package subscription

import "errors"

var (
	// ErrUnknownPlan indicates a plan ID outside the known tiers.
	ErrUnknownPlan = errors.New("unknown plan")

	// ErrInvalidPlan indicates an unrecognized plan ID supplied to a
	// plan-change operation.
	ErrInvalidPlan = errors.New("invalid plan")

	// ErrCompanyNotFound indicates the referenced company has no
	// subscription state.
	ErrCompanyNotFound = errors.New("company subscription not found")

	// ErrInvalidCycle indicates billing cycle bounds that are not strictly
	// ordered.
	ErrInvalidCycle = errors.New("billing cycle end must be after start")
)
