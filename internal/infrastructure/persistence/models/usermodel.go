package models

import (
	"time"

	"gorm.io/gorm"

	"siloops/internal/shared/constants"
)

// UserModel is the persistence model for accounts.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: usr_xxx"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	CompanyID    string `gorm:"size:50;index:idx_user_company"`
	Role         string `gorm:"not null;size:20;default:member"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
