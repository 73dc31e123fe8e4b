package mappers

import (
	"siloops/internal/domain/user"
	"siloops/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between user entities and models.
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
}

type userMapper struct{}

// NewUserMapper creates a new user mapper.
func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	return user.ReconstructUser(
		model.ID,
		model.SID,
		model.Email,
		model.PasswordHash,
		model.CompanyID,
		user.Role(model.Role),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *userMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		CompanyID:    entity.CompanySID(),
		Role:         string(entity.Role()),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}
