// Package dto defines request and response shapes for company use cases.
package dto

import (
	"time"

	"siloops/internal/domain/company"
)

// CreateCompanyDTO carries admin input for provisioning a tenant.
type CreateCompanyDTO struct {
	Name  string `json:"name" binding:"required,max=255"`
	TaxID string `json:"taxId" binding:"omitempty,max=64"`
}

// CompanyDTO is the API representation of a tenant.
type CompanyDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"taxId,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// CompanyToDTO converts a domain company to its API shape.
func CompanyToDTO(c *company.Company) *CompanyDTO {
	return &CompanyDTO{
		ID:        c.SID(),
		Name:      c.Name(),
		TaxID:     c.TaxID(),
		Status:    string(c.Status()),
		CreatedAt: c.CreatedAt(),
	}
}

// CompaniesToDTOs converts a slice of domain companies.
func CompaniesToDTOs(companies []*company.Company) []*CompanyDTO {
	dtos := make([]*CompanyDTO, 0, len(companies))
	for _, c := range companies {
		dtos = append(dtos, CompanyToDTO(c))
	}
	return dtos
}
