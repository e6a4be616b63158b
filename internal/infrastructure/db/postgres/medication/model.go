package medication

import (
	"time"
)

type (
	Medication struct {
		ID         uint64
		Name       string
		Ingredient string
		Stock      uint32
		Notes      string
		IsActive   bool

		CreatedAt time.Time
		UpdatedAt time.Time
		DeletedAt *time.Time
	}
	Medications []*Medication
)
