package medication

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "shelter-admin-api/internal/domain/medication"
	"shelter-admin-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Pool
}

func NewRepository(db postgres.Pool) domain.Repository {
	return &Repository{db: db}
}

func scanMedication(row pgx.Row) (*Medication, error) {
	m := new(Medication)
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Ingredient,
		&m.Stock,
		&m.Notes,
		&m.IsActive,

		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (r *Repository) FetchMedications(ctx context.Context, page int) (domain.Medications, error) {
	rows, err := r.db.Query(ctx, SelectMedications, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ms Medications
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ms), nil
}

func (r *Repository) FetchMedicationByID(ctx context.Context, id domain.ID) (*domain.Medication, error) {
	m, err := scanMedication(r.db.QueryRow(ctx, SelectMedicationByID, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(m), nil
}

func (r *Repository) CreateMedication(ctx context.Context, req domain.Medication) (*domain.Medication, error) {
	m, err := scanMedication(r.db.QueryRow(ctx, InsertMedication,
		req.Name, req.Ingredient, req.Stock, req.Notes,
	))
	if err != nil {
		return nil, err
	}

	return fromDBModel(m), nil
}

func (r *Repository) UpdateMedication(ctx context.Context, req domain.Medication) (*domain.Medication, error) {
	m, err := scanMedication(r.db.QueryRow(ctx, UpdateMedicationByID,
		req.Name, req.Ingredient, req.Stock, req.Notes, uint64(req.ID),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(m), nil
}

func (r *Repository) DeleteMedication(ctx context.Context, id domain.ID) (bool, error) {
	tag, err := r.db.Exec(ctx, SoftDeleteMedicationByID, uint64(id))
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
