package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActiveSubscription(t *testing.T) *CompanySubscription {
	t.Helper()
	sub, err := NewCompanySubscription("cmp_test123", DefaultCycleDays)
	require.NoError(t, err)
	return sub
}

func reconstructWithCount(t *testing.T, count int, cycleEnd time.Time, status Status) *CompanySubscription {
	t.Helper()
	now := time.Now().UTC()
	sub, err := ReconstructCompanySubscription(
		1, "cmp_test123", PlanBasic, count,
		cycleEnd.AddDate(0, 0, -DefaultCycleDays), cycleEnd,
		status, nil, 1, now.AddDate(0, -1, 0), now,
	)
	require.NoError(t, err)
	return sub
}

func TestNewCompanySubscription_Defaults(t *testing.T) {
	sub := newActiveSubscription(t)

	assert.Equal(t, "cmp_test123", sub.CompanyID())
	assert.Equal(t, PlanFree, sub.PlanID())
	assert.Equal(t, 0, sub.OperationsCount())
	assert.Equal(t, StatusActive, sub.Status())
	assert.True(t, sub.IsActive())
	assert.True(t, sub.CycleEnd().After(sub.CycleStart()))
	assert.WithinDuration(t, sub.CycleStart().AddDate(0, 0, DefaultCycleDays), sub.CycleEnd(), time.Second)
}

func TestNewCompanySubscription_EmptyCompanyID(t *testing.T) {
	sub, err := NewCompanySubscription("", DefaultCycleDays)

	assert.Error(t, err)
	assert.Nil(t, sub)
}

func TestReconstructCompanySubscription_InvalidCycle(t *testing.T) {
	now := time.Now().UTC()
	_, err := ReconstructCompanySubscription(
		1, "cmp_x", PlanFree, 0, now, now, StatusActive, nil, 1, now, now,
	)

	assert.ErrorIs(t, err, ErrInvalidCycle)
}

func TestReconstructCompanySubscription_NegativeCount(t *testing.T) {
	now := time.Now().UTC()
	_, err := ReconstructCompanySubscription(
		1, "cmp_x", PlanFree, -1, now, now.AddDate(0, 0, 30), StatusActive, nil, 1, now, now,
	)

	assert.Error(t, err)
}

func TestCycleExpired(t *testing.T) {
	end := time.Now().UTC().Add(time.Hour)
	sub := reconstructWithCount(t, 10, end, StatusActive)

	assert.False(t, sub.CycleExpired(end.Add(-time.Minute)))
	// The end bound is exclusive: the cycle is over exactly at end.
	assert.True(t, sub.CycleExpired(end))
	assert.True(t, sub.CycleExpired(end.Add(time.Minute)))
}

func TestEffectiveOperationsCount(t *testing.T) {
	end := time.Now().UTC().Add(time.Hour)
	sub := reconstructWithCount(t, 42, end, StatusActive)

	assert.Equal(t, 42, sub.EffectiveOperationsCount(end.Add(-time.Minute)))
	assert.Equal(t, 0, sub.EffectiveOperationsCount(end.Add(time.Minute)))
	// Reading the effective count never mutates the stored counter.
	assert.Equal(t, 42, sub.OperationsCount())
}

func TestRolloverCycle(t *testing.T) {
	end := time.Now().UTC().Add(-time.Hour)
	sub := reconstructWithCount(t, 42, end, StatusActive)

	now := time.Now().UTC()
	sub.RolloverCycle(now, DefaultCycleDays)

	assert.Equal(t, 0, sub.OperationsCount())
	assert.Equal(t, now, sub.CycleStart())
	assert.Equal(t, now.AddDate(0, 0, DefaultCycleDays), sub.CycleEnd())
}

func TestIncrementOperationsCount(t *testing.T) {
	sub := newActiveSubscription(t)

	sub.IncrementOperationsCount()
	sub.IncrementOperationsCount()

	assert.Equal(t, 2, sub.OperationsCount())
}

func TestChangePlan_KeepsCounterAndCycle(t *testing.T) {
	end := time.Now().UTC().Add(time.Hour)
	sub := reconstructWithCount(t, 42, end, StatusActive)
	start := sub.CycleStart()

	err := sub.ChangePlan(PlanEnterprise)

	require.NoError(t, err)
	assert.Equal(t, PlanEnterprise, sub.PlanID())
	assert.Equal(t, 42, sub.OperationsCount())
	assert.Equal(t, start, sub.CycleStart())
	assert.Equal(t, end, sub.CycleEnd())
}

func TestChangePlan_InvalidID(t *testing.T) {
	sub := newActiveSubscription(t)

	err := sub.ChangePlan(PlanID("gold"))

	assert.ErrorIs(t, err, ErrInvalidPlan)
	assert.Equal(t, PlanFree, sub.PlanID())
}

func TestStatusTransitions(t *testing.T) {
	sub := newActiveSubscription(t)

	sub.Suspend()
	assert.Equal(t, StatusSuspended, sub.Status())
	assert.False(t, sub.IsActive())

	sub.Activate()
	assert.True(t, sub.IsActive())

	sub.Cancel()
	assert.Equal(t, StatusCancelled, sub.Status())
	assert.False(t, sub.IsActive())
}

func TestSetID(t *testing.T) {
	sub := newActiveSubscription(t)

	require.NoError(t, sub.SetID(7))
	assert.Equal(t, uint(7), sub.ID())
	assert.Error(t, sub.SetID(8))
}
