// Package operation contains the grain operation aggregate: a delivery or
// withdrawal of cereal recorded against a company's silo inventory.
package operation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"siloops/internal/shared/id"
)

// Type distinguishes grain moving into or out of a silo.
type Type string

const (
	TypeDelivery   Type = "delivery"
	TypeWithdrawal Type = "withdrawal"
)

// IsValid reports whether the operation type is known.
func (t Type) IsValid() bool {
	return t == TypeDelivery || t == TypeWithdrawal
}

func (t Type) String() string {
	return string(t)
}

// Operation is a single grain movement. Creation of operations is the
// quota-gated action of the system.
type Operation struct {
	opID       uint
	sid        string
	companyID  string
	opType     Type
	clientName string
	driverName string
	cereal     string
	siloName   string
	quantityKG float64
	occurredAt time.Time
	notes      string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewOperation validates and builds an operation with a fresh short ID.
func NewOperation(companyID string, opType Type, clientName, driverName, cereal, siloName string, quantityKG float64, occurredAt time.Time, notes string) (*Operation, error) {
	if companyID == "" {
		return nil, errors.New("company ID is required")
	}
	if !opType.IsValid() {
		return nil, fmt.Errorf("invalid operation type: %s", opType)
	}
	if strings.TrimSpace(cereal) == "" {
		return nil, errors.New("cereal is required")
	}
	if quantityKG <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %v", quantityKG)
	}

	now := time.Now().UTC()
	if occurredAt.IsZero() {
		occurredAt = now
	}

	return &Operation{
		sid:        id.MustGenerateWithPrefix(id.PrefixOperation, id.DefaultLength),
		companyID:  companyID,
		opType:     opType,
		clientName: strings.TrimSpace(clientName),
		driverName: strings.TrimSpace(driverName),
		cereal:     strings.TrimSpace(cereal),
		siloName:   strings.TrimSpace(siloName),
		quantityKG: quantityKG,
		occurredAt: occurredAt,
		notes:      notes,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructOperation rebuilds the entity from persistence.
func ReconstructOperation(
	opID uint,
	sid string,
	companyID string,
	opType Type,
	clientName, driverName, cereal, siloName string,
	quantityKG float64,
	occurredAt time.Time,
	notes string,
	createdAt, updatedAt time.Time,
) (*Operation, error) {
	if opID == 0 {
		return nil, errors.New("operation ID cannot be zero")
	}
	if sid == "" {
		return nil, errors.New("operation SID is required")
	}
	if companyID == "" {
		return nil, errors.New("company ID is required")
	}
	if !opType.IsValid() {
		return nil, fmt.Errorf("invalid operation type: %s", opType)
	}

	return &Operation{
		opID:       opID,
		sid:        sid,
		companyID:  companyID,
		opType:     opType,
		clientName: clientName,
		driverName: driverName,
		cereal:     cereal,
		siloName:   siloName,
		quantityKG: quantityKG,
		occurredAt: occurredAt,
		notes:      notes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (o *Operation) ID() uint             { return o.opID }
func (o *Operation) SID() string          { return o.sid }
func (o *Operation) CompanyID() string    { return o.companyID }
func (o *Operation) OpType() Type         { return o.opType }
func (o *Operation) ClientName() string   { return o.clientName }
func (o *Operation) DriverName() string   { return o.driverName }
func (o *Operation) Cereal() string       { return o.cereal }
func (o *Operation) SiloName() string     { return o.siloName }
func (o *Operation) QuantityKG() float64  { return o.quantityKG }
func (o *Operation) OccurredAt() time.Time { return o.occurredAt }
func (o *Operation) Notes() string        { return o.notes }
func (o *Operation) CreatedAt() time.Time { return o.createdAt }
func (o *Operation) UpdatedAt() time.Time { return o.updatedAt }

// SetID assigns the persistence-generated ID once, after the initial insert.
func (o *Operation) SetID(opID uint) error {
	if o.opID != 0 {
		return errors.New("operation ID already set")
	}
	if opID == 0 {
		return errors.New("operation ID cannot be zero")
	}
	o.opID = opID
	return nil
}
