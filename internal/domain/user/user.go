// Package user contains the minimal account aggregate used for
// authentication: users belong to a company and carry a role.
package user

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"siloops/internal/shared/id"
)

// Role separates platform operators from company members.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// IsValid reports whether the role is known.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleMember
}

// User is an authenticated account. Admin users are not bound to a company.
type User struct {
	userID       uint
	sid          string
	email        string
	passwordHash string
	companySID   string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser hashes the password and builds a user. Member users require a
// company; admin users must not carry one.
func NewUser(email, password, companySID string, role Role, bcryptCost int) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("valid email is required")
	}
	if len(password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	if !role.IsValid() {
		return nil, errors.New("invalid role: " + string(role))
	}
	if role == RoleMember && companySID == "" {
		return nil, errors.New("member users require a company")
	}
	if role == RoleAdmin && companySID != "" {
		return nil, errors.New("admin users are not bound to a company")
	}

	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		sid:          id.MustGenerateWithPrefix(id.PrefixUser, id.DefaultLength),
		email:        email,
		passwordHash: string(hash),
		companySID:   companySID,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds the entity from persistence.
func ReconstructUser(userID uint, sid, email, passwordHash, companySID string, role Role, createdAt, updatedAt time.Time) (*User, error) {
	if userID == 0 {
		return nil, errors.New("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, errors.New("invalid role: " + string(role))
	}

	return &User{
		userID:       userID,
		sid:          sid,
		email:        email,
		passwordHash: passwordHash,
		companySID:   companySID,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.userID }
func (u *User) SID() string          { return u.sid }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CompanySID() string   { return u.companySID }
func (u *User) Role() Role           { return u.role }
func (u *User) IsAdmin() bool        { return u.role == RoleAdmin }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// CheckPassword verifies a candidate password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

// SetID assigns the persistence-generated ID once, after the initial insert.
func (u *User) SetID(userID uint) error {
	if u.userID != 0 {
		return errors.New("user ID already set")
	}
	if userID == 0 {
		return errors.New("user ID cannot be zero")
	}
	u.userID = userID
	return nil
}
