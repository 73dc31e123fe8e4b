package subscription

import (
	"errors"
	"fmt"
	"time"
)

// DefaultCycleDays is the length of a billing cycle. Cycles are fixed-length
// rolling windows, not calendar months.
const DefaultCycleDays = 30

// CompanySubscription is the per-company quota state: the current plan, the
// operation counter for the running billing cycle and the cycle bounds.
// The cycle end is an exclusive upper bound.
type CompanySubscription struct {
	id              uint
	companyID       string
	planID          PlanID
	operationsCount int
	cycleStart      time.Time
	cycleEnd        time.Time
	status          Status
	metadata        map[string]interface{}
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewCompanySubscription provisions quota state for a freshly created
// company: free plan, zero counter, an active cycle starting now.
func NewCompanySubscription(companyID string, cycleDays int) (*CompanySubscription, error) {
	if companyID == "" {
		return nil, errors.New("company ID is required")
	}
	if cycleDays <= 0 {
		cycleDays = DefaultCycleDays
	}

	now := time.Now().UTC()
	return &CompanySubscription{
		companyID:       companyID,
		planID:          PlanFree,
		operationsCount: 0,
		cycleStart:      now,
		cycleEnd:        now.AddDate(0, 0, cycleDays),
		status:          StatusActive,
		metadata:        make(map[string]interface{}),
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructCompanySubscription rebuilds the entity from persistence.
func ReconstructCompanySubscription(
	id uint,
	companyID string,
	planID PlanID,
	operationsCount int,
	cycleStart time.Time,
	cycleEnd time.Time,
	status Status,
	metadata map[string]interface{},
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*CompanySubscription, error) {
	if id == 0 {
		return nil, errors.New("subscription ID cannot be zero")
	}
	if companyID == "" {
		return nil, errors.New("company ID is required")
	}
	if !planID.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlan, planID)
	}
	if operationsCount < 0 {
		return nil, fmt.Errorf("operations count cannot be negative: %d", operationsCount)
	}
	if !cycleEnd.After(cycleStart) {
		return nil, ErrInvalidCycle
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &CompanySubscription{
		id:              id,
		companyID:       companyID,
		planID:          planID,
		operationsCount: operationsCount,
		cycleStart:      cycleStart,
		cycleEnd:        cycleEnd,
		status:          status,
		metadata:        metadata,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (s *CompanySubscription) ID() uint           { return s.id }
func (s *CompanySubscription) CompanyID() string  { return s.companyID }
func (s *CompanySubscription) PlanID() PlanID     { return s.planID }
func (s *CompanySubscription) OperationsCount() int { return s.operationsCount }
func (s *CompanySubscription) CycleStart() time.Time { return s.cycleStart }
func (s *CompanySubscription) CycleEnd() time.Time   { return s.cycleEnd }
func (s *CompanySubscription) Status() Status     { return s.status }
func (s *CompanySubscription) Version() int       { return s.version }
func (s *CompanySubscription) CreatedAt() time.Time { return s.createdAt }
func (s *CompanySubscription) UpdatedAt() time.Time { return s.updatedAt }

// Metadata returns a shallow copy of the metadata map.
func (s *CompanySubscription) Metadata() map[string]interface{} {
	out := make(map[string]interface{}, len(s.metadata))
	for k, v := range s.metadata {
		out[k] = v
	}
	return out
}

// SetID assigns the persistence-generated ID once, after the initial insert.
func (s *CompanySubscription) SetID(id uint) error {
	if s.id != 0 {
		return errors.New("subscription ID already set")
	}
	if id == 0 {
		return errors.New("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// IsActive reports whether operation creation may be admitted at all.
func (s *CompanySubscription) IsActive() bool {
	return s.status == StatusActive
}

// CycleExpired reports whether now has reached the exclusive cycle end.
func (s *CompanySubscription) CycleExpired(now time.Time) bool {
	return !now.Before(s.cycleEnd)
}

// EffectiveOperationsCount returns the counter as it should be read at the
// given instant: zero once the cycle has expired, since the persisted
// counter belongs to the previous window. Read paths use this instead of
// mutating state; the actual rollover is persisted lazily by the increment
// path.
func (s *CompanySubscription) EffectiveOperationsCount(now time.Time) int {
	if s.CycleExpired(now) {
		return 0
	}
	return s.operationsCount
}

// RolloverCycle resets the counter and starts a fresh fixed-length cycle at
// now. Callers must persist the result.
func (s *CompanySubscription) RolloverCycle(now time.Time, cycleDays int) {
	if cycleDays <= 0 {
		cycleDays = DefaultCycleDays
	}
	s.operationsCount = 0
	s.cycleStart = now
	s.cycleEnd = now.AddDate(0, 0, cycleDays)
	s.updatedAt = now
}

// IncrementOperationsCount advances the cycle counter by one.
func (s *CompanySubscription) IncrementOperationsCount() {
	s.operationsCount++
	s.updatedAt = time.Now().UTC()
}

// ChangePlan overwrites the plan. The counter and cycle bounds are left
// untouched: a mid-cycle upgrade takes effect against the usage already
// accumulated.
func (s *CompanySubscription) ChangePlan(planID PlanID) error {
	if !planID.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidPlan, planID)
	}
	s.planID = planID
	s.updatedAt = time.Now().UTC()
	return nil
}

// Suspend blocks operation creation without resetting quota state.
func (s *CompanySubscription) Suspend() {
	s.status = StatusSuspended
	s.updatedAt = time.Now().UTC()
}

// Cancel permanently deactivates the subscription.
func (s *CompanySubscription) Cancel() {
	s.status = StatusCancelled
	s.updatedAt = time.Now().UTC()
}

// Activate re-enables a suspended or cancelled subscription.
func (s *CompanySubscription) Activate() {
	s.status = StatusActive
	s.updatedAt = time.Now().UTC()
}
