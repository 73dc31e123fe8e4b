package handlers

import (
	"context"

	opdto "siloops/internal/application/operation/dto"
)

// Use case interfaces for OperationHandler

type createOperationUseCase interface {
	Execute(ctx context.Context, companyID string, req *opdto.CreateOperationDTO) (*opdto.OperationDTO, error)
}

type listOperationsUseCase interface {
	Execute(ctx context.Context, companyID string, req *opdto.ListOperationsDTO) ([]*opdto.OperationDTO, int64, error)
}

type getOperationUseCase interface {
	Execute(ctx context.Context, companyID, operationSID string) (*opdto.OperationDTO, error)
}

type deleteOperationUseCase interface {
	Execute(ctx context.Context, companyID, operationSID string) error
}
