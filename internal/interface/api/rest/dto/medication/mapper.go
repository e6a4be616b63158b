package medication

import (
	domain "shelter-admin-api/internal/domain/medication"
)

func ToResponseMedication(mDomain domain.Medication) Medication {
	return Medication{
		ID:         uint64(mDomain.ID),
		Name:       mDomain.Name,
		Ingredient: mDomain.Ingredient,
		Stock:      mDomain.Stock,
		Notes:      mDomain.Notes,
	}
}

func ToResponseMedications(msDomain domain.Medications) Medications {
	ms := make(Medications, len(msDomain))
	for idx, m := range msDomain {
		ms[idx] = ToResponseMedication(*m)
	}

	return ms
}

func ToDomainMedication(mRequest Request) domain.Medication {
	return domain.Medication{
		Name:       mRequest.Name,
		Ingredient: mRequest.Ingredient,
		Stock:      mRequest.Stock,
		Notes:      mRequest.Notes,
	}
}
