package person

import (
	"time"
)

type (
	ID   uint64
	Role string

	DocumentKind string

	// Person is the merged aggregate view: profile facts plus the
	// credential half. Reads never expose one half without the other.
	Person struct {
		ID            ID
		Name          string
		Email         *string
		DocumentValue *string
		DocumentKind  *DocumentKind
		Phone         string
		Address       string
		Active        bool

		CreatedAt time.Time
		UpdatedAt time.Time
		DeletedAt *time.Time

		Credential Credential
	}
	Persons []*Person

	// Credential carries its own activity flag and soft-delete
	// timestamp, independent of the Person's.
	Credential struct {
		ID           uint64
		Role         Role
		PasswordHash *string
		Active       bool

		CreatedAt time.Time
		UpdatedAt time.Time
		DeletedAt *time.Time
	}
)

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

const (
	DocumentDNI         DocumentKind = "DNI"
	DocumentPassport    DocumentKind = "PASSPORT"
	DocumentForeignerID DocumentKind = "FOREIGNER_ID"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

func (k DocumentKind) Valid() bool {
	return k == DocumentDNI || k == DocumentPassport || k == DocumentForeignerID
}

// Filter narrows FetchPersons: Term matches name, email or document
// value; Role keeps only aggregates with that credential role.
type Filter struct {
	Term string
	Role *Role
}

// Changes is a partial change set. Nil fields are untouched; the
// repository writes only the half that actually changed.
type Changes struct {
	Name          *string
	Email         *string
	DocumentValue *string
	DocumentKind  *DocumentKind
	Phone         *string
	Address       *string
	Active        *bool

	Role             *Role
	PasswordHash     *string
	CredentialActive *bool
}

func (c Changes) TouchesPerson() bool {
	return c.Name != nil || c.Email != nil || c.DocumentValue != nil ||
		c.DocumentKind != nil || c.Phone != nil || c.Address != nil || c.Active != nil
}

func (c Changes) TouchesCredential() bool {
	return c.Role != nil || c.PasswordHash != nil || c.CredentialActive != nil
}
