package usecases

import (
	"context"
	"fmt"

	"siloops/internal/application/operation/dto"
	"siloops/internal/domain/operation"
	"siloops/internal/domain/subscription"
	"siloops/internal/shared/logger"
)

// EnforcementMode selects how quota is reserved around operation creation.
type EnforcementMode string

const (
	// EnforcementSoft checks quota before creating and increments after.
	// Concurrent requests near the boundary may briefly overshoot the limit.
	EnforcementSoft EnforcementMode = "soft"
	// EnforcementAtomic reserves quota with a conditional counter update
	// after the insert and rolls the operation back on late rejection.
	EnforcementAtomic EnforcementMode = "atomic"
)

// CreateOperationUseCase records a grain movement, gated by the company's
// subscription quota.
type CreateOperationUseCase struct {
	operationRepo operation.Repository
	quotaChecker  QuotaChecker
	quotaMutator  QuotaMutator
	enforcement   EnforcementMode
	logger        logger.Interface
}

// NewCreateOperationUseCase creates the use case. An unrecognized
// enforcement mode falls back to soft.
func NewCreateOperationUseCase(
	operationRepo operation.Repository,
	quotaChecker QuotaChecker,
	quotaMutator QuotaMutator,
	enforcement EnforcementMode,
	logger logger.Interface,
) *CreateOperationUseCase {
	if enforcement != EnforcementAtomic {
		enforcement = EnforcementSoft
	}
	return &CreateOperationUseCase{
		operationRepo: operationRepo,
		quotaChecker:  quotaChecker,
		quotaMutator:  quotaMutator,
		enforcement:   enforcement,
		logger:        logger,
	}
}

// Execute checks quota, persists the operation, and advances the usage
// counter. Quota rejections surface as *QuotaExceededError.
func (uc *CreateOperationUseCase) Execute(ctx context.Context, companyID string, req *dto.CreateOperationDTO) (*dto.OperationDTO, error) {
	decision, err := uc.quotaChecker.Execute(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !decision.CanCreate {
		return nil, &QuotaExceededError{Decision: decision}
	}

	op, err := operation.NewOperation(
		companyID,
		operation.Type(req.Type),
		req.ClientName,
		req.DriverName,
		req.Cereal,
		req.SiloName,
		req.QuantityKG,
		req.OccurredAt,
		req.Notes,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.operationRepo.Create(ctx, op); err != nil {
		uc.logger.Errorw("failed to persist operation",
			"company_id", companyID,
			"operation_type", req.Type,
			"error", err,
		)
		return nil, fmt.Errorf("failed to create operation: %w", err)
	}

	if uc.enforcement == EnforcementAtomic && decision.Limit != subscription.UnlimitedOperations {
		applied, err := uc.quotaMutator.ExecuteConditional(ctx, companyID, decision.Limit)
		if err != nil {
			uc.logger.Warnw("conditional quota increment failed, keeping operation",
				"company_id", companyID,
				"operation_id", op.SID(),
				"error", err,
			)
			return dto.OperationToDTO(op), nil
		}
		if !applied {
			// The limit was reached between check and insert. Undo the
			// insert and reject as if the original check had failed.
			if delErr := uc.operationRepo.DeleteBySID(ctx, op.SID()); delErr != nil {
				uc.logger.Errorw("failed to roll back operation after quota rejection",
					"company_id", companyID,
					"operation_id", op.SID(),
					"error", delErr,
				)
			}
			decision.CanCreate = false
			decision.CurrentCount = decision.Limit
			decision.Remaining = 0
			decision.ErrorMessage = fmt.Sprintf(
				"Monthly limit of %d operations reached for plan %s", decision.Limit, decision.PlanName)
			return nil, &QuotaExceededError{Decision: decision}
		}
		return dto.OperationToDTO(op), nil
	}

	// Soft mode: the counter update is best-effort and never fails the
	// request once the operation is stored.
	if ok := uc.quotaMutator.Execute(ctx, companyID); !ok {
		uc.logger.Warnw("usage counter was not advanced for created operation",
			"company_id", companyID,
			"operation_id", op.SID(),
		)
	}

	return dto.OperationToDTO(op), nil
}
