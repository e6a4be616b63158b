package person

import (
	"context"
)

type Repository interface {
	FetchPersonByID(ctx context.Context, id ID) (*Person, error)
	FetchPersonByEmail(ctx context.Context, email string) (*Person, error)
	FetchPersons(ctx context.Context, filter Filter) (Persons, error)
	CreatePerson(ctx context.Context, req Person) (*Person, error)
	UpdatePerson(ctx context.Context, id ID, changes Changes) (*Person, error)
	DeletePerson(ctx context.Context, id ID) (bool, error)
	CountActiveCredentials(ctx context.Context) (int64, error)
}
