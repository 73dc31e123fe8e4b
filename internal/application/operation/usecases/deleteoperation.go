package usecases

import (
	"context"
	"fmt"

	"siloops/internal/domain/operation"
	appErrors "siloops/internal/shared/errors"
	"siloops/internal/shared/logger"
)

// DeleteOperationUseCase removes a recorded operation. Deleting does not
// refund quota; the monthly counter tracks created operations, not
// surviving ones.
type DeleteOperationUseCase struct {
	operationRepo operation.Repository
	logger        logger.Interface
}

func NewDeleteOperationUseCase(operationRepo operation.Repository, logger logger.Interface) *DeleteOperationUseCase {
	return &DeleteOperationUseCase{operationRepo: operationRepo, logger: logger}
}

func (uc *DeleteOperationUseCase) Execute(ctx context.Context, companyID, operationSID string) error {
	op, err := uc.operationRepo.GetBySID(ctx, operationSID)
	if err != nil {
		uc.logger.Errorw("failed to load operation for deletion",
			"operation_id", operationSID,
			"error", err,
		)
		return fmt.Errorf("failed to load operation: %w", err)
	}
	if op == nil || op.CompanyID() != companyID {
		return appErrors.NewNotFoundError("operation not found", operationSID)
	}

	if err := uc.operationRepo.DeleteBySID(ctx, operationSID); err != nil {
		uc.logger.Errorw("failed to delete operation",
			"operation_id", operationSID,
			"error", err,
		)
		return fmt.Errorf("failed to delete operation: %w", err)
	}

	return nil
}
