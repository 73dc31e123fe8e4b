package mappers

import (
	"siloops/internal/domain/operation"
	"siloops/internal/infrastructure/persistence/models"
)

// OperationMapper handles the conversion between domain entities and
// persistence models.
type OperationMapper interface {
	ToEntity(model *models.OperationModel) (*operation.Operation, error)
	ToModel(entity *operation.Operation) *models.OperationModel
	ToEntities(models []*models.OperationModel) ([]*operation.Operation, error)
}

type operationMapper struct{}

// NewOperationMapper creates a new operation mapper.
func NewOperationMapper() OperationMapper {
	return &operationMapper{}
}

func (m *operationMapper) ToEntity(model *models.OperationModel) (*operation.Operation, error) {
	if model == nil {
		return nil, nil
	}

	return operation.ReconstructOperation(
		model.ID,
		model.SID,
		model.CompanyID,
		operation.Type(model.OpType),
		model.ClientName,
		model.DriverName,
		model.Cereal,
		model.SiloName,
		model.QuantityKG,
		model.OccurredAt,
		model.Notes,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *operationMapper) ToModel(entity *operation.Operation) *models.OperationModel {
	if entity == nil {
		return nil
	}

	return &models.OperationModel{
		ID:         entity.ID(),
		SID:        entity.SID(),
		CompanyID:  entity.CompanyID(),
		OpType:     entity.OpType().String(),
		ClientName: entity.ClientName(),
		DriverName: entity.DriverName(),
		Cereal:     entity.Cereal(),
		SiloName:   entity.SiloName(),
		QuantityKG: entity.QuantityKG(),
		OccurredAt: entity.OccurredAt(),
		Notes:      entity.Notes(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

func (m *operationMapper) ToEntities(ms []*models.OperationModel) ([]*operation.Operation, error) {
	entities := make([]*operation.Operation, 0, len(ms))
	for _, model := range ms {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
