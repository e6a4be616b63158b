package medication

import (
	"time"
)

type (
	ID         uint64
	Medication struct {
		ID          ID
		Name        string
		Ingredient  string
		Stock       uint32
		Notes       string
		Active      bool

		CreatedAt time.Time
		UpdatedAt time.Time
		DeletedAt *time.Time
	}
	Medications []*Medication
)
