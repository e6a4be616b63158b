package person

import (
	domain "shelter-admin-api/internal/domain/person"
)

func fromDBModel(model *Person) *domain.Person {
	var p = &domain.Person{
		ID:            domain.ID(model.ID),
		Name:          model.Name,
		Email:         model.Email,
		DocumentValue: model.DocumentValue,
		DocumentKind:  (*domain.DocumentKind)(model.DocumentKind),
		Phone:         model.Phone,
		Address:       model.Address,
		Active:        model.IsActive,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		DeletedAt: model.DeletedAt,

		Credential: domain.Credential{
			ID:           model.CredID,
			Role:         domain.Role(model.Role),
			PasswordHash: model.PasswordHash,
			Active:       model.CredIsActive,
			CreatedAt:    model.CredCreatedAt,
			UpdatedAt:    model.CredUpdatedAt,
			DeletedAt:    model.CredDeletedAt,
		},
	}

	return p
}

func fromDBModels(models *Persons) domain.Persons {
	ps := make(domain.Persons, len(*models))
	for idx, p := range *models {
		ps[idx] = fromDBModel(p)
	}

	return ps
}
