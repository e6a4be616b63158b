package person

const aggregateColumns = `
		  p.id, p.name, p.email, p.document_value, p.document_kind, p.phone, p.address,
		  p.is_active, p.created_at, p.updated_at, p.deleted_at,
		  c.id, c.role, c.password_hash, c.is_active, c.created_at, c.updated_at, c.deleted_at`

// Both halves must be active and not soft-deleted for standard reads.
const activeAggregate = `
		  p.is_active AND p.deleted_at IS NULL
		  AND c.is_active AND c.deleted_at IS NULL`

const (
	SelectPersonByID = `
		SELECT` + aggregateColumns + `
		FROM persons p
		JOIN credentials c ON c.person_id = p.id
		WHERE p.id = $1 AND` + activeAggregate + `
	`
	SelectPersonByEmail = `
		SELECT` + aggregateColumns + `
		FROM persons p
		JOIN credentials c ON c.person_id = p.id
		WHERE p.email = $1 AND` + activeAggregate + `
	`
	SelectPersons = `
		SELECT` + aggregateColumns + `
		FROM persons p
		JOIN credentials c ON c.person_id = p.id
		WHERE` + activeAggregate + `
		  AND ($1 = '' OR p.name ILIKE '%' || $1 || '%'
		       OR p.email ILIKE '%' || $1 || '%'
		       OR p.document_value ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR c.role = $2)
		ORDER BY p.name ASC
	`
	// Post-write re-read inside the same transaction, no activity
	// filter: an update may have just deactivated a half.
	SelectAggregateAnyState = `
		SELECT` + aggregateColumns + `
		FROM persons p
		JOIN credentials c ON c.person_id = p.id
		WHERE p.id = $1
	`
	SelectAggregateForUpdate = `
		SELECT p.id
		FROM persons p
		JOIN credentials c ON c.person_id = p.id
		WHERE p.id = $1 AND` + activeAggregate + `
		FOR UPDATE OF p, c
	`
	InsertPerson = `
		INSERT INTO persons (name, email, document_value, document_kind, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	InsertCredential = `
		INSERT INTO credentials (person_id, role, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	// The two soft-delete statements are deliberately independent: a
	// credential may already be deleted while its person is not. Each
	// statement reconciles its own half; the transaction keeps the
	// pair atomic.
	SoftDeleteCredential = `
		UPDATE credentials
		SET deleted_at = now(), is_active = false, updated_at = now()
		WHERE person_id = $1 AND deleted_at IS NULL
	`
	SoftDeletePerson = `
		UPDATE persons
		SET deleted_at = now(), is_active = false, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`
	CountActiveCredentials = `
		SELECT count(*) FROM credentials
		WHERE is_active AND deleted_at IS NULL
	`
)
