package models

import (
	"time"

	"gorm.io/gorm"

	"siloops/internal/shared/constants"
)

// OperationModel is the persistence model for grain operations.
type OperationModel struct {
	ID         uint      `gorm:"primarykey"`
	SID        string    `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: op_xxx"`
	CompanyID  string    `gorm:"not null;size:50;index:idx_company_occurred,priority:1"`
	OpType     string    `gorm:"not null;size:20;index:idx_op_type"`
	ClientName string    `gorm:"size:255"`
	DriverName string    `gorm:"size:255"`
	Cereal     string    `gorm:"not null;size:100"`
	SiloName   string    `gorm:"size:100"`
	QuantityKG float64   `gorm:"not null"`
	OccurredAt time.Time `gorm:"not null;index:idx_company_occurred,priority:2"`
	Notes      string    `gorm:"size:2000"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (OperationModel) TableName() string {
	return constants.TableOperations
}
