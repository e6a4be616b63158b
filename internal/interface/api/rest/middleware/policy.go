package middleware

import (
	"shelter-admin-api/internal/domain/person"
)

type Operation string

const (
	OpRead   Operation = "read"
	OpWrite  Operation = "write"
	OpDelete Operation = "delete"
)

// CanActOn is the single authorization policy consulted after target
// resolution. The current contract does not differentiate by role: any
// authenticated identity may act on the target the request resolves
// to, which for id-less requests is always itself.
func CanActOn(acting *person.Person, target person.ID, op Operation) bool {
	return acting != nil
}
