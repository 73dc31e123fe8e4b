package usecases

import (
	"context"
	"fmt"

	"siloops/internal/application/operation/dto"
	"siloops/internal/domain/operation"
	"siloops/internal/shared/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListOperationsUseCase returns a company's operations, newest first.
type ListOperationsUseCase struct {
	operationRepo operation.Repository
	logger        logger.Interface
}

func NewListOperationsUseCase(operationRepo operation.Repository, logger logger.Interface) *ListOperationsUseCase {
	return &ListOperationsUseCase{operationRepo: operationRepo, logger: logger}
}

// Execute lists operations for the company with pagination.
func (uc *ListOperationsUseCase) Execute(ctx context.Context, companyID string, req *dto.ListOperationsDTO) ([]*dto.OperationDTO, int64, error) {
	filter := operation.ListFilter{
		CompanyID: companyID,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}
	if req.Type != "" {
		opType := operation.Type(req.Type)
		if !opType.IsValid() {
			return nil, 0, fmt.Errorf("invalid operation type: %s", req.Type)
		}
		filter.OpType = &opType
	}

	ops, total, err := uc.operationRepo.ListByCompany(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list operations",
			"company_id", companyID,
			"error", err,
		)
		return nil, 0, fmt.Errorf("failed to list operations: %w", err)
	}

	return dto.OperationsToDTOs(ops), total, nil
}
