package medication

import (
	"context"
)

type Repository interface {
	FetchMedications(ctx context.Context, page int) (Medications, error)
	FetchMedicationByID(ctx context.Context, id ID) (*Medication, error)
	CreateMedication(ctx context.Context, req Medication) (*Medication, error)
	UpdateMedication(ctx context.Context, req Medication) (*Medication, error)
	DeleteMedication(ctx context.Context, id ID) (bool, error)
}
