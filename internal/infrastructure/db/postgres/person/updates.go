package person

import (
	"fmt"
	"strings"

	domain "shelter-admin-api/internal/domain/person"
)

// The update statements are assembled per call so an untouched column
// never appears in the SET list: a person-only change must not bump
// the credential row, and vice versa.

func buildPersonUpdate(id domain.ID, ch domain.Changes) (string, []any) {
	var (
		set  []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if ch.Name != nil {
		add("name", *ch.Name)
	}
	if ch.Email != nil {
		add("email", *ch.Email)
	}
	if ch.DocumentValue != nil {
		add("document_value", *ch.DocumentValue)
	}
	if ch.DocumentKind != nil {
		add("document_kind", string(*ch.DocumentKind))
	}
	if ch.Phone != nil {
		add("phone", *ch.Phone)
	}
	if ch.Address != nil {
		add("address", *ch.Address)
	}
	if ch.Active != nil {
		add("is_active", *ch.Active)
	}

	args = append(args, uint64(id))
	sql := fmt.Sprintf(
		"UPDATE persons SET %s, updated_at = now() WHERE id = $%d AND deleted_at IS NULL",
		strings.Join(set, ", "), len(args),
	)

	return sql, args
}

func buildCredentialUpdate(id domain.ID, ch domain.Changes) (string, []any) {
	var (
		set  []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if ch.Role != nil {
		add("role", string(*ch.Role))
	}
	if ch.PasswordHash != nil {
		add("password_hash", *ch.PasswordHash)
	}
	if ch.CredentialActive != nil {
		add("is_active", *ch.CredentialActive)
	}

	args = append(args, uint64(id))
	sql := fmt.Sprintf(
		"UPDATE credentials SET %s, updated_at = now() WHERE person_id = $%d AND deleted_at IS NULL",
		strings.Join(set, ", "), len(args),
	)

	return sql, args
}
