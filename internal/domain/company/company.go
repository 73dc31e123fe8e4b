// Package company contains the tenant aggregate. Each company owns its silo
// inventory, its operations and exactly one subscription state.
package company

import (
	"errors"
	"strings"
	"time"

	"siloops/internal/shared/id"
)

// Status is the lifecycle state of a company account.
type Status string

const (
	StatusActive   Status = "active"
	StatusDisabled Status = "disabled"
)

// Company is a tenant of the platform.
type Company struct {
	companyID uint
	sid       string
	name      string
	taxID     string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewCompany validates and builds a company with a fresh short ID.
func NewCompany(name, taxID string) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("company name is required")
	}

	now := time.Now().UTC()
	return &Company{
		sid:       id.MustGenerateWithPrefix(id.PrefixCompany, id.DefaultLength),
		name:      name,
		taxID:     strings.TrimSpace(taxID),
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructCompany rebuilds the entity from persistence.
func ReconstructCompany(companyID uint, sid, name, taxID string, status Status, createdAt, updatedAt time.Time) (*Company, error) {
	if companyID == 0 {
		return nil, errors.New("company ID cannot be zero")
	}
	if sid == "" {
		return nil, errors.New("company SID is required")
	}
	if status != StatusActive && status != StatusDisabled {
		return nil, errors.New("invalid company status: " + string(status))
	}

	return &Company{
		companyID: companyID,
		sid:       sid,
		name:      name,
		taxID:     taxID,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Company) ID() uint             { return c.companyID }
func (c *Company) SID() string          { return c.sid }
func (c *Company) Name() string         { return c.name }
func (c *Company) TaxID() string        { return c.taxID }
func (c *Company) Status() Status       { return c.status }
func (c *Company) CreatedAt() time.Time { return c.createdAt }
func (c *Company) UpdatedAt() time.Time { return c.updatedAt }

// SetID assigns the persistence-generated ID once, after the initial insert.
func (c *Company) SetID(companyID uint) error {
	if c.companyID != 0 {
		return errors.New("company ID already set")
	}
	if companyID == 0 {
		return errors.New("company ID cannot be zero")
	}
	c.companyID = companyID
	return nil
}
