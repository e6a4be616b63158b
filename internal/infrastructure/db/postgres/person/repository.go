package person

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "shelter-admin-api/internal/domain/person"
	"shelter-admin-api/internal/infrastructure/db/postgres"
)

// Uniqueness is enforced by partial indexes over non-deleted rows; the
// constraint name tells us which caller-facing field collided.
var constraintFields = map[string]string{
	"persons_email_key":         "email",
	"persons_document_key":      "document",
	"credentials_person_id_key": "person_id",
}

func duplicateFieldErr(constraint string) error {
	field, ok := constraintFields[constraint]
	if !ok {
		field = "field"
	}
	return &domain.DuplicateError{Field: field}
}

type Repository struct {
	db postgres.Pool
}

func NewRepository(db postgres.Pool) domain.Repository {
	return &Repository{db: db}
}

func scanAggregate(row pgx.Row) (*Person, error) {
	p := new(Person)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.DocumentValue,
		&p.DocumentKind,
		&p.Phone,
		&p.Address,
		&p.IsActive,

		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DeletedAt,

		&p.CredID,
		&p.Role,
		&p.PasswordHash,
		&p.CredIsActive,
		&p.CredCreatedAt,
		&p.CredUpdatedAt,
		&p.CredDeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repository) FetchPersonByID(ctx context.Context, id domain.ID) (*domain.Person, error) {
	p, err := scanAggregate(r.db.QueryRow(ctx, SelectPersonByID, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) FetchPersonByEmail(ctx context.Context, email string) (*domain.Person, error) {
	p, err := scanAggregate(r.db.QueryRow(ctx, SelectPersonByEmail, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) FetchPersons(ctx context.Context, filter domain.Filter) (domain.Persons, error) {
	var role string
	if filter.Role != nil {
		role = string(*filter.Role)
	}

	rows, err := r.db.Query(ctx, SelectPersons, filter.Term, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps Persons
	for rows.Next() {
		p, err := scanAggregate(rows)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ps), nil
}

// CreatePerson writes both halves of the aggregate in one transaction:
// person row first, then the credential referencing it. Any failure
// rolls back the pair; a half-written aggregate is never visible.
func (r *Repository) CreatePerson(ctx context.Context, req domain.Person) (*domain.Person, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var personID uint64
	err = tx.QueryRow(ctx, InsertPerson,
		req.Name, req.Email, req.DocumentValue, (*string)(req.DocumentKind), req.Phone, req.Address,
	).Scan(&personID)
	if err != nil {
		if constraint, ok := postgres.UniqueViolationConstraint(err); ok {
			return nil, duplicateFieldErr(constraint)
		}
		return nil, err
	}

	var credID uint64
	err = tx.QueryRow(ctx, InsertCredential,
		personID, string(req.Credential.Role), req.Credential.PasswordHash,
	).Scan(&credID)
	if err != nil {
		if constraint, ok := postgres.UniqueViolationConstraint(err); ok {
			return nil, duplicateFieldErr(constraint)
		}
		return nil, err
	}

	p, err := scanAggregate(tx.QueryRow(ctx, SelectAggregateAnyState, personID))
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return fromDBModel(p), nil
}

// UpdatePerson confirms the aggregate is active, locks both rows, then
// writes only the half the change set touches. The merged result is
// re-read from the same transaction's view.
func (r *Repository) UpdatePerson(ctx context.Context, id domain.ID, changes domain.Changes) (*domain.Person, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var lockedID uint64
	if err = tx.QueryRow(ctx, SelectAggregateForUpdate, uint64(id)).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if changes.TouchesPerson() {
		sql, args := buildPersonUpdate(id, changes)
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			if constraint, ok := postgres.UniqueViolationConstraint(err); ok {
				return nil, duplicateFieldErr(constraint)
			}
			return nil, err
		}
	}
	if changes.TouchesCredential() {
		sql, args := buildCredentialUpdate(id, changes)
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			return nil, err
		}
	}

	p, err := scanAggregate(tx.QueryRow(ctx, SelectAggregateAnyState, uint64(id)))
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return fromDBModel(p), nil
}

// DeletePerson soft-deletes both halves atomically. The two updates
// run independently so an already-deleted half is simply skipped; the
// second call over the same id affects zero rows and returns false.
func (r *Repository) DeletePerson(ctx context.Context, id domain.ID) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	credTag, err := tx.Exec(ctx, SoftDeleteCredential, uint64(id))
	if err != nil {
		return false, err
	}
	personTag, err := tx.Exec(ctx, SoftDeletePerson, uint64(id))
	if err != nil {
		return false, err
	}

	if err = tx.Commit(ctx); err != nil {
		return false, err
	}

	return credTag.RowsAffected()+personTag.RowsAffected() > 0, nil
}

func (r *Repository) CountActiveCredentials(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, CountActiveCredentials).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
