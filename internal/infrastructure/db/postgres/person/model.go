package person

import (
	"time"
)

type (
	ID uint64

	// Person is the joined row shape: the persons columns followed by
	// the credentials columns. One scan per aggregate.
	Person struct {
		ID            uint64
		Name          string
		Email         *string
		DocumentValue *string
		DocumentKind  *string
		Phone         string
		Address       string
		IsActive      bool

		CreatedAt time.Time
		UpdatedAt time.Time
		DeletedAt *time.Time

		CredID        uint64
		Role          string
		PasswordHash  *string
		CredIsActive  bool
		CredCreatedAt time.Time
		CredUpdatedAt time.Time
		CredDeletedAt *time.Time
	}
	Persons []*Person
)
