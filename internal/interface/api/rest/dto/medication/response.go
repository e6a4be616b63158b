package medication

type (
	Medication struct {
		ID         uint64 `json:"id"`
		Name       string `json:"name"`
		Ingredient string `json:"ingredient,omitempty"`
		Stock      uint32 `json:"stock"`
		Notes      string `json:"notes,omitempty"`
	}
	Medications  []Medication
	ResponseData struct {
		Data Medications `json:"data"`
	}
	Request struct {
		Name       string `json:"name"`
		Ingredient string `json:"ingredient"`
		Stock      uint32 `json:"stock"`
		Notes      string `json:"notes"`
	}
)
