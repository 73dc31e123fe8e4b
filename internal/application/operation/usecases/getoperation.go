package usecases

import (
	"context"
	"fmt"

	"siloops/internal/application/operation/dto"
	"siloops/internal/domain/operation"
	appErrors "siloops/internal/shared/errors"
	"siloops/internal/shared/logger"
)

// GetOperationUseCase fetches a single operation scoped to a company.
type GetOperationUseCase struct {
	operationRepo operation.Repository
	logger        logger.Interface
}

func NewGetOperationUseCase(operationRepo operation.Repository, logger logger.Interface) *GetOperationUseCase {
	return &GetOperationUseCase{operationRepo: operationRepo, logger: logger}
}

// Execute returns the operation, or a not-found error when it does not
// exist or belongs to a different company.
func (uc *GetOperationUseCase) Execute(ctx context.Context, companyID, operationSID string) (*dto.OperationDTO, error) {
	op, err := uc.operationRepo.GetBySID(ctx, operationSID)
	if err != nil {
		uc.logger.Errorw("failed to load operation",
			"operation_id", operationSID,
			"error", err,
		)
		return nil, fmt.Errorf("failed to load operation: %w", err)
	}
	if op == nil || op.CompanyID() != companyID {
		return nil, appErrors.NewNotFoundError("operation not found", operationSID)
	}

	return dto.OperationToDTO(op), nil
}
