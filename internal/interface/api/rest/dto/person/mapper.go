package person

import (
	domain "shelter-admin-api/internal/domain/person"
)

func ToResponsePerson(pDomain domain.Person) Person {
	var p = Person{
		ID:            uint64(pDomain.ID),
		Name:          pDomain.Name,
		Email:         pDomain.Email,
		DocumentValue: pDomain.DocumentValue,
		DocumentKind:  (*string)(pDomain.DocumentKind),
		Phone:         pDomain.Phone,
		Address:       pDomain.Address,
		Role:          string(pDomain.Credential.Role),
		Active:        pDomain.Active && pDomain.Credential.Active,
	}

	return p
}

func ToResponsePersons(psDomain domain.Persons) Persons {
	ps := make(Persons, len(psDomain))
	for idx, p := range psDomain {
		ps[idx] = ToResponsePerson(*p)
	}

	return ps
}

func ToDomainPerson(pRequest Request) domain.Person {
	var p = domain.Person{
		Name:    pRequest.Name,
		Phone:   pRequest.Phone,
		Address: pRequest.Address,
		Credential: domain.Credential{
			Role: domain.Role(pRequest.Role),
		},
	}
	if pRequest.Email != "" {
		email := pRequest.Email
		p.Email = &email
	}
	if pRequest.DocumentValue != "" {
		value := pRequest.DocumentValue
		kind := domain.DocumentKind(pRequest.DocumentKind)
		p.DocumentValue = &value
		p.DocumentKind = &kind
	}

	return p
}

// ToChanges splits the update request into the repository change set
// and the plaintext password, which only the service may touch.
func ToChanges(pRequest UpdateRequest) (domain.Changes, *string) {
	ch := domain.Changes{
		Name:             pRequest.Name,
		Email:            pRequest.Email,
		DocumentValue:    pRequest.DocumentValue,
		DocumentKind:     (*domain.DocumentKind)(pRequest.DocumentKind),
		Phone:            pRequest.Phone,
		Address:          pRequest.Address,
		Active:           pRequest.Active,
		Role:             (*domain.Role)(pRequest.Role),
		CredentialActive: pRequest.CredentialActive,
	}

	return ch, pRequest.Password
}
