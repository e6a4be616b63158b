package services

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"shelter-admin-api/internal/application/ports"
	domain "shelter-admin-api/internal/domain/medication"
)

type MedicationService struct {
	medicationRepository domain.Repository
	mCounter             *prometheus.CounterVec
}

func NewMedicationService(
	medicationRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.MedicationService {
	return &MedicationService{
		medicationRepository: medicationRepository,
		mCounter:             mCounter,
	}
}

func (ms *MedicationService) FindMedications(ctx context.Context, page int) (domain.Medications, error) {
	return ms.medicationRepository.FetchMedications(ctx, page)
}

func (ms *MedicationService) FindMedicationByID(ctx context.Context, id domain.ID) (*domain.Medication, error) {
	return ms.medicationRepository.FetchMedicationByID(ctx, id)
}

func (ms *MedicationService) CreateMedication(ctx context.Context, m domain.Medication) (*domain.Medication, error) {
	if strings.TrimSpace(m.Name) == "" {
		return nil, domain.ErrNameRequired
	}

	mRet, err := ms.medicationRepository.CreateMedication(ctx, m)
	if err != nil {
		return nil, err
	}

	ms.mCounter.WithLabelValues("medication_created_total").Inc()

	return mRet, nil
}

func (ms *MedicationService) UpdateMedication(ctx context.Context, m domain.Medication) (*domain.Medication, error) {
	if strings.TrimSpace(m.Name) == "" {
		return nil, domain.ErrNameRequired
	}

	mRet, err := ms.medicationRepository.UpdateMedication(ctx, m)
	if err != nil {
		return nil, err
	}

	ms.mCounter.WithLabelValues("medication_updated_total").Inc()

	return mRet, nil
}

func (ms *MedicationService) DeleteMedication(ctx context.Context, id domain.ID) (bool, error) {
	affected, err := ms.medicationRepository.DeleteMedication(ctx, id)
	if err != nil {
		return false, err
	}

	if affected {
		ms.mCounter.WithLabelValues("medication_deleted_total").Inc()
	}

	return affected, nil
}
