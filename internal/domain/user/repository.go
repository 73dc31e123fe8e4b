package user

import "context"

// Repository persists users. Lookups return (nil, nil) when absent.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetBySID(ctx context.Context, sid string) (*User, error)
}
