package models

import (
	"time"

	"gorm.io/gorm"

	"siloops/internal/shared/constants"
)

// CompanyModel is the persistence model for tenants.
type CompanyModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: cmp_xxx"`
	Name      string `gorm:"not null;size:255"`
	TaxID     string `gorm:"size:64;index:idx_tax_id"`
	Status    string `gorm:"not null;size:20;default:active"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (CompanyModel) TableName() string {
	return constants.TableCompanies
}
