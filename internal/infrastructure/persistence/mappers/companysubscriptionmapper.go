package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"siloops/internal/domain/subscription"
	"siloops/internal/infrastructure/persistence/models"
)

// CompanySubscriptionMapper handles the conversion between domain entities
// and persistence models.
type CompanySubscriptionMapper interface {
	ToEntity(model *models.CompanySubscriptionModel) (*subscription.CompanySubscription, error)
	ToModel(entity *subscription.CompanySubscription) (*models.CompanySubscriptionModel, error)
}

type companySubscriptionMapper struct{}

// NewCompanySubscriptionMapper creates a new subscription mapper.
func NewCompanySubscriptionMapper() CompanySubscriptionMapper {
	return &companySubscriptionMapper{}
}

func (m *companySubscriptionMapper) ToEntity(model *models.CompanySubscriptionModel) (*subscription.CompanySubscription, error) {
	if model == nil {
		return nil, nil
	}

	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	return subscription.ReconstructCompanySubscription(
		model.ID,
		model.CompanyID,
		subscription.PlanID(model.PlanID),
		model.OperationsCount,
		model.CycleStart,
		model.CycleEnd,
		subscription.Status(model.Status),
		metadata,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *companySubscriptionMapper) ToModel(entity *subscription.CompanySubscription) (*models.CompanySubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	var metadata datatypes.JSON
	if md := entity.Metadata(); len(md) > 0 {
		raw, err := json.Marshal(md)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadata = raw
	}

	return &models.CompanySubscriptionModel{
		ID:              entity.ID(),
		CompanyID:       entity.CompanyID(),
		PlanID:          string(entity.PlanID()),
		OperationsCount: entity.OperationsCount(),
		CycleStart:      entity.CycleStart(),
		CycleEnd:        entity.CycleEnd(),
		Status:          string(entity.Status()),
		Metadata:        metadata,
		Version:         entity.Version(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}
