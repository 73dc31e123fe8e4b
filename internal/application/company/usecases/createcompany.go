// Package usecases contains tenant provisioning and listing flows.
package usecases

import (
	"context"
	"fmt"

	"siloops/internal/application/company/dto"
	"siloops/internal/domain/company"
	"siloops/internal/domain/subscription"
	"siloops/internal/shared/logger"
)

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CreateCompanyUseCase provisions a tenant together with its initial free
// subscription. The two writes commit atomically so no company can exist
// without quota state.
type CreateCompanyUseCase struct {
	companyRepo      company.Repository
	subscriptionRepo subscription.CompanySubscriptionRepository
	txManager        TransactionManager
	cycleDays        int
	logger           logger.Interface
}

func NewCreateCompanyUseCase(
	companyRepo company.Repository,
	subscriptionRepo subscription.CompanySubscriptionRepository,
	txManager TransactionManager,
	cycleDays int,
	logger logger.Interface,
) *CreateCompanyUseCase {
	if cycleDays <= 0 {
		cycleDays = subscription.DefaultCycleDays
	}
	return &CreateCompanyUseCase{
		companyRepo:      companyRepo,
		subscriptionRepo: subscriptionRepo,
		txManager:        txManager,
		cycleDays:        cycleDays,
		logger:           logger,
	}
}

func (uc *CreateCompanyUseCase) Execute(ctx context.Context, req *dto.CreateCompanyDTO) (*dto.CompanyDTO, error) {
	newCompany, err := company.NewCompany(req.Name, req.TaxID)
	if err != nil {
		return nil, err
	}

	sub, err := subscription.NewCompanySubscription(newCompany.SID(), uc.cycleDays)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.companyRepo.Create(txCtx, newCompany); err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}
		if err := uc.subscriptionRepo.Create(txCtx, sub); err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("company provisioning failed",
			"company_name", req.Name,
			"error", err,
		)
		return nil, err
	}

	uc.logger.Infow("company provisioned",
		"company_id", newCompany.SID(),
		"plan", sub.PlanID(),
	)

	return dto.CompanyToDTO(newCompany), nil
}
