package usecases

import (
	"context"
	"fmt"

	"siloops/internal/application/company/dto"
	"siloops/internal/domain/company"
	appErrors "siloops/internal/shared/errors"
	"siloops/internal/shared/logger"
)

// ListCompaniesUseCase returns tenants for the admin console.
type ListCompaniesUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewListCompaniesUseCase(companyRepo company.Repository, logger logger.Interface) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *ListCompaniesUseCase) Execute(ctx context.Context, page, pageSize int) ([]*dto.CompanyDTO, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	companies, total, err := uc.companyRepo.List(ctx, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list companies", "error", err)
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}

	return dto.CompaniesToDTOs(companies), total, nil
}

// GetCompanyUseCase fetches a single tenant.
type GetCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewGetCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *GetCompanyUseCase {
	return &GetCompanyUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *GetCompanyUseCase) Execute(ctx context.Context, companySID string) (*dto.CompanyDTO, error) {
	c, err := uc.companyRepo.GetBySID(ctx, companySID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "company_id", companySID, "error", err)
		return nil, fmt.Errorf("failed to load company: %w", err)
	}
	if c == nil {
		return nil, appErrors.NewNotFoundError("company not found", companySID)
	}

	return dto.CompanyToDTO(c), nil
}
