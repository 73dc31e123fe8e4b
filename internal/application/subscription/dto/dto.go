// Package dto defines the transport-facing shapes for subscription data.
// Field names follow the frontend's camelCase contract.
package dto

import "time"

// PlanDTO is the public catalog entry for a subscription tier.
type PlanDTO struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	MonthlyOperationLimit int      `json:"monthlyOperationLimit"`
	MonthlyPrice          float64  `json:"monthlyPrice"`
	Features              []string `json:"features"`
}

// SubscriptionInfoDTO joins a company's live quota state with its plan.
type SubscriptionInfoDTO struct {
	CompanyID    string    `json:"companyId"`
	Plan         string    `json:"plan"`
	PlanName     string    `json:"planName"`
	MonthlyPrice float64   `json:"monthlyPrice"`
	Features     []string  `json:"features"`
	Status       string    `json:"status"`
	CurrentCount int       `json:"currentCount"`
	Limit        int       `json:"limit"`
	CycleStart   time.Time `json:"billingCycleStart"`
	CycleEnd     time.Time `json:"billingCycleEnd"`
}
