// Package dto defines request and response shapes for operation use cases.
package dto

import "time"

// CreateOperationDTO carries handler input for recording a grain movement.
type CreateOperationDTO struct {
	Type       string    `json:"type" binding:"required,oneof=delivery withdrawal"`
	ClientName string    `json:"clientName" binding:"omitempty,max=255"`
	DriverName string    `json:"driverName" binding:"omitempty,max=255"`
	Cereal     string    `json:"cereal" binding:"required,max=100"`
	SiloName   string    `json:"siloName" binding:"omitempty,max=100"`
	QuantityKG float64   `json:"quantityKg" binding:"required,gt=0"`
	OccurredAt time.Time `json:"occurredAt"`
	Notes      string    `json:"notes" binding:"omitempty,max=2000"`
}

// OperationDTO is the API representation of a stored operation.
type OperationDTO struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"companyId"`
	Type       string    `json:"type"`
	ClientName string    `json:"clientName,omitempty"`
	DriverName string    `json:"driverName,omitempty"`
	Cereal     string    `json:"cereal"`
	SiloName   string    `json:"siloName,omitempty"`
	QuantityKG float64   `json:"quantityKg"`
	OccurredAt time.Time `json:"occurredAt"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ListOperationsDTO carries pagination and filter input for listings.
type ListOperationsDTO struct {
	Type     string `form:"type" binding:"omitempty,oneof=delivery withdrawal"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
}
