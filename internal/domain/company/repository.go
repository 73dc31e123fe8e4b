package company

import "context"

// Repository persists companies. Lookups return (nil, nil) when absent.
type Repository interface {
	Create(ctx context.Context, c *Company) error
	GetBySID(ctx context.Context, sid string) (*Company, error)
	List(ctx context.Context, page, pageSize int) ([]*Company, int64, error)
}
