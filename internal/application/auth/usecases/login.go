// Package usecases contains authentication flows.
package usecases

import (
	"context"
	"fmt"
	"time"

	"siloops/internal/application/auth/dto"
	"siloops/internal/domain/user"
	appErrors "siloops/internal/shared/errors"
	"siloops/internal/shared/logger"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Generate(u *user.User) (token string, expiresAt time.Time, err error)
}

// LoginUseCase verifies credentials and issues a token.
type LoginUseCase struct {
	userRepo user.Repository
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, issuer TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, issuer: issuer, logger: logger}
}

// Execute authenticates the credentials. Unknown emails and wrong passwords
// both map to the same unauthorized error.
func (uc *LoginUseCase) Execute(ctx context.Context, req *dto.LoginDTO) (*dto.LoginResultDTO, error) {
	u, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		uc.logger.Errorw("failed to load user for login", "error", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil || !u.CheckPassword(req.Password) {
		return nil, appErrors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresAt, err := uc.issuer.Generate(u)
	if err != nil {
		uc.logger.Errorw("failed to sign access token", "user_id", u.SID(), "error", err)
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.LoginResultDTO{
		Token:     token,
		ExpiresAt: expiresAt,
		User: dto.UserDTO{
			ID:        u.SID(),
			Email:     u.Email(),
			CompanyID: u.CompanySID(),
			Role:      string(u.Role()),
		},
	}, nil
}
