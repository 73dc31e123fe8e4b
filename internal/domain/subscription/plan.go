package subscription

import (
	"fmt"
)

// PlanID identifies a subscription tier.
type PlanID string

const (
	PlanFree       PlanID = "free"
	PlanBasic      PlanID = "basic"
	PlanEnterprise PlanID = "enterprise"
)

// UnlimitedOperations is the sentinel limit for plans with no monthly cap.
const UnlimitedOperations = -1

// planOrder fixes the display order of the catalog.
var planOrder = []PlanID{PlanFree, PlanBasic, PlanEnterprise}

// IsValid reports whether the plan ID is one of the known tiers.
func (p PlanID) IsValid() bool {
	switch p {
	case PlanFree, PlanBasic, PlanEnterprise:
		return true
	}
	return false
}

func (p PlanID) String() string {
	return string(p)
}

// Plan is an immutable subscription tier definition: a monthly operation
// limit, a price and an informational feature list.
type Plan struct {
	id                    PlanID
	displayName           string
	monthlyOperationLimit int
	monthlyPriceCents     uint64
	features              []string
}

// NewPlan validates and builds a plan definition. The limit must be
// non-negative or exactly UnlimitedOperations.
func NewPlan(id PlanID, displayName string, monthlyOperationLimit int, monthlyPriceCents uint64, features []string) (Plan, error) {
	if !id.IsValid() {
		return Plan{}, fmt.Errorf("%w: %s", ErrUnknownPlan, id)
	}
	if displayName == "" {
		return Plan{}, fmt.Errorf("plan display name is required")
	}
	if monthlyOperationLimit < 0 && monthlyOperationLimit != UnlimitedOperations {
		return Plan{}, fmt.Errorf("invalid monthly operation limit %d for plan %s", monthlyOperationLimit, id)
	}

	return Plan{
		id:                    id,
		displayName:           displayName,
		monthlyOperationLimit: monthlyOperationLimit,
		monthlyPriceCents:     monthlyPriceCents,
		features:              append([]string(nil), features...),
	}, nil
}

func (p Plan) ID() PlanID          { return p.id }
func (p Plan) DisplayName() string { return p.displayName }

// MonthlyOperationLimit returns the operation cap per billing cycle, or
// UnlimitedOperations.
func (p Plan) MonthlyOperationLimit() int { return p.monthlyOperationLimit }

func (p Plan) MonthlyPriceCents() uint64 { return p.monthlyPriceCents }

// IsUnlimited reports whether the plan has no monthly operation cap.
func (p Plan) IsUnlimited() bool { return p.monthlyOperationLimit == UnlimitedOperations }

// Features returns a copy of the informational feature list.
func (p Plan) Features() []string { return append([]string(nil), p.features...) }

// PlanRegistry exposes the static plan catalog. Implementations are
// immutable after construction and safe for concurrent use.
type PlanRegistry interface {
	// GetPlan returns the plan for the given ID, or ErrUnknownPlan.
	GetPlan(id PlanID) (Plan, error)
	// AllPlans returns the catalog in stable display order
	// (free, basic, enterprise).
	AllPlans() []Plan
}

type staticPlanRegistry struct {
	plans map[PlanID]Plan
}

// NewPlanRegistry builds a registry from the given plan definitions.
// Exactly one definition per tier is required.
func NewPlanRegistry(plans []Plan) (PlanRegistry, error) {
	byID := make(map[PlanID]Plan, len(plans))
	for _, p := range plans {
		if _, dup := byID[p.id]; dup {
			return nil, fmt.Errorf("duplicate plan definition: %s", p.id)
		}
		byID[p.id] = p
	}
	for _, id := range planOrder {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("missing plan definition: %s", id)
		}
	}
	return &staticPlanRegistry{plans: byID}, nil
}

func (r *staticPlanRegistry) GetPlan(id PlanID) (Plan, error) {
	plan, ok := r.plans[id]
	if !ok {
		return Plan{}, fmt.Errorf("%w: %s", ErrUnknownPlan, id)
	}
	return plan, nil
}

func (r *staticPlanRegistry) AllPlans() []Plan {
	out := make([]Plan, 0, len(planOrder))
	for _, id := range planOrder {
		out = append(out, r.plans[id])
	}
	return out
}
