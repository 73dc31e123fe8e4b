package operation

import "context"

// ListFilter narrows operation listings.
type ListFilter struct {
	CompanyID string
	OpType    *Type
	Page      int
	PageSize  int
}

// Repository persists grain operations. Lookups return (nil, nil) when the
// operation does not exist.
type Repository interface {
	Create(ctx context.Context, op *Operation) error
	GetBySID(ctx context.Context, sid string) (*Operation, error)
	ListByCompany(ctx context.Context, filter ListFilter) ([]*Operation, int64, error)
	DeleteBySID(ctx context.Context, sid string) error
}
