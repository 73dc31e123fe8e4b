package dto

import "siloops/internal/domain/operation"

// OperationToDTO converts a domain operation to its API shape.
func OperationToDTO(op *operation.Operation) *OperationDTO {
	return &OperationDTO{
		ID:         op.SID(),
		CompanyID:  op.CompanyID(),
		Type:       op.OpType().String(),
		ClientName: op.ClientName(),
		DriverName: op.DriverName(),
		Cereal:     op.Cereal(),
		SiloName:   op.SiloName(),
		QuantityKG: op.QuantityKG(),
		OccurredAt: op.OccurredAt(),
		Notes:      op.Notes(),
		CreatedAt:  op.CreatedAt(),
	}
}

// OperationsToDTOs converts a slice of domain operations.
func OperationsToDTOs(ops []*operation.Operation) []*OperationDTO {
	dtos := make([]*OperationDTO, 0, len(ops))
	for _, op := range ops {
		dtos = append(dtos, OperationToDTO(op))
	}
	return dtos
}
