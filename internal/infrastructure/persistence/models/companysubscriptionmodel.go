package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"siloops/internal/shared/constants"
)

// CompanySubscriptionModel is the persistence model for per-company quota
// state. This is the anti-corruption layer between domain and database.
type CompanySubscriptionModel struct {
	ID              uint      `gorm:"primarykey"`
	CompanyID       string    `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: cmp_xxx"`
	PlanID          string    `gorm:"not null;size:20;index:idx_plan"`
	OperationsCount int       `gorm:"not null;default:0"`
	CycleStart      time.Time `gorm:"not null"`
	CycleEnd        time.Time `gorm:"not null;index:idx_cycle_end"`
	Status          string    `gorm:"not null;size:20;index:idx_status"`
	Metadata        datatypes.JSON
	Version         int `gorm:"not null;default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (CompanySubscriptionModel) TableName() string {
	return constants.TableCompanySubscriptions
}

// BeforeCreate hook for GORM
func (m *CompanySubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}
