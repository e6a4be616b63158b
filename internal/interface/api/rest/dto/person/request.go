package person

type (
	// Request is the create shape. Role is what the caller asks for;
	// the service may still override it during bootstrap.
	Request struct {
		Name          string `json:"name"`
		Email         string `json:"email"`
		DocumentValue string `json:"document_value"`
		DocumentKind  string `json:"document_kind"`
		Phone         string `json:"phone"`
		Address       string `json:"address"`
		Role          string `json:"role"`
		Password      string `json:"password"`
	}

	// UpdateRequest is a partial change set: nil means "leave alone".
	UpdateRequest struct {
		Name             *string `json:"name"`
		Email            *string `json:"email"`
		DocumentValue    *string `json:"document_value"`
		DocumentKind     *string `json:"document_kind"`
		Phone            *string `json:"phone"`
		Address          *string `json:"address"`
		Active           *bool   `json:"active"`
		Role             *string `json:"role"`
		Password         *string `json:"password"`
		CredentialActive *bool   `json:"credential_active"`
	}
)
