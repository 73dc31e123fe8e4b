package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"siloops/internal/domain/subscription"
	"siloops/internal/infrastructure/persistence/mappers"
	"siloops/internal/infrastructure/persistence/models"
	"siloops/internal/shared/db"
	"siloops/internal/shared/logger"
)

type companySubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.CompanySubscriptionMapper
	logger logger.Interface
}

// NewCompanySubscriptionRepository creates the gorm-backed subscription
// repository.
func NewCompanySubscriptionRepository(gdb *gorm.DB, logger logger.Interface) subscription.CompanySubscriptionRepository {
	return &companySubscriptionRepository{
		db:     gdb,
		mapper: mappers.NewCompanySubscriptionMapper(),
		logger: logger,
	}
}

func (r *companySubscriptionRepository) Create(ctx context.Context, sub *subscription.CompanySubscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return fmt.Errorf("failed to convert subscription to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "company_id", sub.CompanyID(), "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if sub.ID() == 0 && model.ID > 0 {
		if err := sub.SetID(model.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *companySubscriptionRepository) GetByCompanyID(ctx context.Context, companyID string) (*subscription.CompanySubscription, error) {
	var model models.CompanySubscriptionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("company_id = ?", companyID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription", "company_id", companyID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *companySubscriptionRepository) Update(ctx context.Context, sub *subscription.CompanySubscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return fmt.Errorf("failed to convert subscription to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CompanySubscriptionModel{}).
		Where("company_id = ?", sub.CompanyID()).
		Updates(map[string]interface{}{
			"plan_id":          model.PlanID,
			"operations_count": model.OperationsCount,
			"cycle_start":      model.CycleStart,
			"cycle_end":        model.CycleEnd,
			"status":           model.Status,
			"metadata":         model.Metadata,
			"version":          gorm.Expr("version + 1"),
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "company_id", sub.CompanyID(), "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("subscription for company %s not found", sub.CompanyID())
	}
	return nil
}

func (r *companySubscriptionRepository) Delete(ctx context.Context, companyID string) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("company_id = ?", companyID).
		Delete(&models.CompanySubscriptionModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscription", "company_id", companyID, "error", result.Error)
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}
	return nil
}

// IncrementIfBelow advances the counter with a single conditional UPDATE so
// two concurrent requests can never both take the last slot. A negative
// limit increments unconditionally.
func (r *companySubscriptionRepository) IncrementIfBelow(ctx context.Context, companyID string, limit int) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CompanySubscriptionModel{}).
		Where("company_id = ? AND (operations_count < ? OR ? < 0)", companyID, limit, limit).
		Updates(map[string]interface{}{
			"operations_count": gorm.Expr("operations_count + 1"),
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to increment operations count", "company_id", companyID, "error", result.Error)
		return false, fmt.Errorf("failed to increment operations count: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
