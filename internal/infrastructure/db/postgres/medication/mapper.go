package medication

import (
	domain "shelter-admin-api/internal/domain/medication"
)

func fromDBModel(model *Medication) *domain.Medication {
	return &domain.Medication{
		ID:         domain.ID(model.ID),
		Name:       model.Name,
		Ingredient: model.Ingredient,
		Stock:      model.Stock,
		Notes:      model.Notes,
		Active:     model.IsActive,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		DeletedAt: model.DeletedAt,
	}
}

func fromDBModels(models *Medications) domain.Medications {
	ms := make(domain.Medications, len(*models))
	for idx, m := range *models {
		ms[idx] = fromDBModel(m)
	}

	return ms
}
