package usecases

import (
	"context"
	"fmt"

	"siloops/internal/application/auth/dto"
	"siloops/internal/domain/user"
	appErrors "siloops/internal/shared/errors"
	"siloops/internal/shared/logger"
)

// RegisterUserUseCase creates an account. Intended for the admin surface;
// there is no self-service signup.
type RegisterUserUseCase struct {
	userRepo   user.Repository
	bcryptCost int
	logger     logger.Interface
}

func NewRegisterUserUseCase(userRepo user.Repository, bcryptCost int, logger logger.Interface) *RegisterUserUseCase {
	return &RegisterUserUseCase{userRepo: userRepo, bcryptCost: bcryptCost, logger: logger}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, req *dto.RegisterUserDTO) (*dto.UserDTO, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		uc.logger.Errorw("failed to check existing user", "error", err)
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, appErrors.NewConflictError("email is already registered")
	}

	u, err := user.NewUser(req.Email, req.Password, req.CompanyID, user.Role(req.Role), uc.bcryptCost)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &dto.UserDTO{
		ID:        u.SID(),
		Email:     u.Email(),
		CompanyID: u.CompanySID(),
		Role:      string(u.Role()),
	}, nil
}
