package medication

const (
	SelectMedications = `
		SELECT id, name, ingredient, stock, notes, is_active, created_at, updated_at, deleted_at
		FROM medications
		WHERE is_active AND deleted_at IS NULL
		ORDER BY name ASC
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	SelectMedicationByID = `
		SELECT id, name, ingredient, stock, notes, is_active, created_at, updated_at, deleted_at
		FROM medications
		WHERE id = $1 AND is_active AND deleted_at IS NULL
	`
	InsertMedication = `
		INSERT INTO medications (name, ingredient, stock, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, ingredient, stock, notes, is_active, created_at, updated_at, deleted_at
	`
	UpdateMedicationByID = `
		UPDATE medications
		SET name = $1,
		    ingredient = $2,
		    stock = $3,
		    notes = $4,
		    updated_at = now()
		WHERE id = $5 AND is_active AND deleted_at IS NULL
		RETURNING id, name, ingredient, stock, notes, is_active, created_at, updated_at, deleted_at
	`
	SoftDeleteMedicationByID = `
		UPDATE medications
		SET deleted_at = now(), is_active = false, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`
)
