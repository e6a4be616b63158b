package person

type (
	// Person is the outbound aggregate view. The password hash never
	// appears here.
	Person struct {
		ID            uint64  `json:"id"`
		Name          string  `json:"name"`
		Email         *string `json:"email,omitempty"`
		DocumentValue *string `json:"document_value,omitempty"`
		DocumentKind  *string `json:"document_kind,omitempty"`
		Phone         string  `json:"phone,omitempty"`
		Address       string  `json:"address,omitempty"`
		Role          string  `json:"role"`
		Active        bool    `json:"active"`
	}
	Persons      []Person
	ResponseData struct {
		Data Persons `json:"data"`
	}
	DeleteResponse struct {
		Deleted bool `json:"deleted"`
	}
)
