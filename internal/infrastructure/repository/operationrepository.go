package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"siloops/internal/domain/operation"
	"siloops/internal/infrastructure/persistence/mappers"
	"siloops/internal/infrastructure/persistence/models"
	"siloops/internal/shared/db"
	"siloops/internal/shared/logger"
)

type operationRepository struct {
	db     *gorm.DB
	mapper mappers.OperationMapper
	logger logger.Interface
}

// NewOperationRepository creates the gorm-backed operation repository.
func NewOperationRepository(gdb *gorm.DB, logger logger.Interface) operation.Repository {
	return &operationRepository{
		db:     gdb,
		mapper: mappers.NewOperationMapper(),
		logger: logger,
	}
}

func (r *operationRepository) Create(ctx context.Context, op *operation.Operation) error {
	model := r.mapper.ToModel(op)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create operation", "company_id", op.CompanyID(), "error", err)
		return fmt.Errorf("failed to create operation: %w", err)
	}

	if op.ID() == 0 && model.ID > 0 {
		if err := op.SetID(model.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *operationRepository) GetBySID(ctx context.Context, sid string) (*operation.Operation, error) {
	var model models.OperationModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get operation", "operation_id", sid, "error", err)
		return nil, fmt.Errorf("failed to get operation: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *operationRepository) ListByCompany(ctx context.Context, filter operation.ListFilter) ([]*operation.Operation, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.OperationModel{}).
		Where("company_id = ?", filter.CompanyID)
	if filter.OpType != nil {
		query = query.Where("op_type = ?", filter.OpType.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count operations", "company_id", filter.CompanyID, "error", err)
		return nil, 0, fmt.Errorf("failed to count operations: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var modelList []*models.OperationModel
	err := query.
		Order("occurred_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list operations", "company_id", filter.CompanyID, "error", err)
		return nil, 0, fmt.Errorf("failed to list operations: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *operationRepository) DeleteBySID(ctx context.Context, sid string) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		Delete(&models.OperationModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete operation", "operation_id", sid, "error", result.Error)
		return fmt.Errorf("failed to delete operation: %w", result.Error)
	}
	return nil
}
