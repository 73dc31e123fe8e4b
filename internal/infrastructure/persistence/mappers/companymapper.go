package mappers

import (
	"siloops/internal/domain/company"
	"siloops/internal/infrastructure/persistence/models"
)

// CompanyMapper handles the conversion between domain entities and
// persistence models.
type CompanyMapper interface {
	ToEntity(model *models.CompanyModel) (*company.Company, error)
	ToModel(entity *company.Company) *models.CompanyModel
	ToEntities(models []*models.CompanyModel) ([]*company.Company, error)
}

type companyMapper struct{}

// NewCompanyMapper creates a new company mapper.
func NewCompanyMapper() CompanyMapper {
	return &companyMapper{}
}

func (m *companyMapper) ToEntity(model *models.CompanyModel) (*company.Company, error) {
	if model == nil {
		return nil, nil
	}
	return company.ReconstructCompany(
		model.ID,
		model.SID,
		model.Name,
		model.TaxID,
		company.Status(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *companyMapper) ToModel(entity *company.Company) *models.CompanyModel {
	if entity == nil {
		return nil
	}
	return &models.CompanyModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		Name:      entity.Name(),
		TaxID:     entity.TaxID(),
		Status:    string(entity.Status()),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *companyMapper) ToEntities(ms []*models.CompanyModel) ([]*company.Company, error) {
	entities := make([]*company.Company, 0, len(ms))
	for _, model := range ms {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
