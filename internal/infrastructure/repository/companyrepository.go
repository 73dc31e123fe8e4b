package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"siloops/internal/domain/company"
	"siloops/internal/infrastructure/persistence/mappers"
	"siloops/internal/infrastructure/persistence/models"
	"siloops/internal/shared/db"
	"siloops/internal/shared/logger"
)

type companyRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
	logger logger.Interface
}

// NewCompanyRepository creates the gorm-backed company repository.
func NewCompanyRepository(gdb *gorm.DB, logger logger.Interface) company.Repository {
	return &companyRepository{
		db:     gdb,
		mapper: mappers.NewCompanyMapper(),
		logger: logger,
	}
}

func (r *companyRepository) Create(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create company", "company_name", c.Name(), "error", err)
		return fmt.Errorf("failed to create company: %w", err)
	}

	if c.ID() == 0 && model.ID > 0 {
		if err := c.SetID(model.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *companyRepository) GetBySID(ctx context.Context, sid string) (*company.Company, error) {
	var model models.CompanyModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get company", "company_id", sid, "error", err)
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *companyRepository) List(ctx context.Context, page, pageSize int) ([]*company.Company, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CompanyModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count companies", "error", err)
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	var modelList []*models.CompanyModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list companies", "error", err)
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
