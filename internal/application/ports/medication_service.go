package ports

import (
	"context"

	"shelter-admin-api/internal/domain/medication"
)

type MedicationService interface {
	FindMedications(ctx context.Context, page int) (medication.Medications, error)
	FindMedicationByID(ctx context.Context, id medication.ID) (*medication.Medication, error)
	CreateMedication(ctx context.Context, m medication.Medication) (*medication.Medication, error)
	UpdateMedication(ctx context.Context, m medication.Medication) (*medication.Medication, error)
	DeleteMedication(ctx context.Context, id medication.ID) (bool, error)
}
