package ports

import (
	"context"

	"shelter-admin-api/internal/domain/person"
)

type PersonService interface {
	FindPersonByID(ctx context.Context, id person.ID) (*person.Person, error)
	FindPersonByEmail(ctx context.Context, email string) (*person.Person, error)
	FindPersons(ctx context.Context, filter person.Filter) (person.Persons, error)
	CreatePerson(ctx context.Context, p person.Person, password string) (*person.Person, error)
	UpdatePerson(ctx context.Context, id person.ID, changes person.Changes, password *string) (*person.Person, error)
	DeletePerson(ctx context.Context, id person.ID) (bool, error)
}
