package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"

	"shelter-admin-api/internal/application/ports"
	domain "shelter-admin-api/internal/domain/person"
	"shelter-admin-api/internal/infrastructure/mq"
	persondto "shelter-admin-api/internal/interface/api/rest/dto/person"
)

type PersonService struct {
	personRepository domain.Repository
	mq               ports.RabbitMQ
	mCounter         *prometheus.CounterVec
}

func NewPersonService(
	personRepository domain.Repository,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.PersonService {
	return &PersonService{
		personRepository: personRepository,
		mq:               rabbit,
		mCounter:         mCounter,
	}
}

func (ps *PersonService) FindPersonByID(ctx context.Context, id domain.ID) (*domain.Person, error) {
	p, err := ps.personRepository.FetchPersonByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (ps *PersonService) FindPersonByEmail(ctx context.Context, email string) (*domain.Person, error) {
	p, err := ps.personRepository.FetchPersonByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (ps *PersonService) FindPersons(ctx context.Context, filter domain.Filter) (domain.Persons, error) {
	persons, err := ps.personRepository.FetchPersons(ctx, filter)
	if err != nil {
		return nil, err
	}

	return persons, nil
}

// CreatePerson hashes the plaintext secret before it reaches storage
// and applies the bootstrap rule: while no active credential exists,
// whatever role was requested is overridden to ADMIN. The count check
// and the insert are one logical create; under a race between two
// first registrations the repository's uniqueness constraints decide,
// and at least one caller is promoted.
func (ps *PersonService) CreatePerson(ctx context.Context, p domain.Person, password string) (*domain.Person, error) {
	if err := validateCreate(&p, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashed := string(hash)
	p.Credential.PasswordHash = &hashed

	count, err := ps.personRepository.CountActiveCredentials(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		p.Credential.Role = domain.RoleAdmin
	}

	pRet, err := ps.personRepository.CreatePerson(ctx, p)
	if err != nil {
		return nil, err
	}

	if pRet != nil {
		ps.mq.GetInputChan() <- mq.Event{
			Id:       uuid.New(),
			TS:       time.Now(),
			Method:   http.MethodPost,
			PersonID: uint64(pRet.ID),
			Payload:  persondto.ToResponsePerson(*pRet),
		}
	}

	ps.mCounter.WithLabelValues("person_created_total").Inc()

	return pRet, nil
}

func (ps *PersonService) UpdatePerson(ctx context.Context, id domain.ID, changes domain.Changes, password *string) (*domain.Person, error) {
	if password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		changes.PasswordHash = &hashed
	}
	if changes.Role != nil && !changes.Role.Valid() {
		return nil, &domain.ValidationError{Field: "role", Reason: "must be ADMIN or USER"}
	}
	if changes.Name != nil {
		name := norm.NFC.String(strings.TrimSpace(*changes.Name))
		if name == "" {
			return nil, &domain.ValidationError{Field: "name", Reason: "name is required"}
		}
		changes.Name = &name
	}

	pRet, err := ps.personRepository.UpdatePerson(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	if pRet == nil {
		return nil, domain.ErrNotFound
	}

	ps.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Method:   http.MethodPut,
		PersonID: uint64(pRet.ID),
		Payload:  persondto.ToResponsePerson(*pRet),
	}

	ps.mCounter.WithLabelValues("person_updated_total").Inc()

	return pRet, nil
}

// DeletePerson soft-deletes the aggregate. A second call over the same
// id is a no-op reporting false, never an error.
func (ps *PersonService) DeletePerson(ctx context.Context, id domain.ID) (bool, error) {
	affected, err := ps.personRepository.DeletePerson(ctx, id)
	if err != nil {
		return false, err
	}

	if affected {
		ps.mq.GetInputChan() <- mq.Event{
			Id:       uuid.New(),
			TS:       time.Now(),
			Method:   http.MethodDelete,
			PersonID: uint64(id),
		}
		ps.mCounter.WithLabelValues("person_deleted_total").Inc()
	}

	return affected, nil
}

func validateCreate(p *domain.Person, password string) error {
	p.Name = norm.NFC.String(strings.TrimSpace(p.Name))
	if p.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "name is required"}
	}
	if p.Email == nil || strings.TrimSpace(*p.Email) == "" {
		return &domain.ValidationError{Field: "email", Reason: "email is required"}
	}
	if password == "" {
		return &domain.ValidationError{Field: "password", Reason: "password is required"}
	}
	if !p.Credential.Role.Valid() {
		return &domain.ValidationError{Field: "role", Reason: "must be ADMIN or USER"}
	}
	if p.DocumentValue != nil && (p.DocumentKind == nil || !p.DocumentKind.Valid()) {
		return &domain.ValidationError{Field: "document_kind", Reason: "must be DNI, PASSPORT or FOREIGNER_ID"}
	}

	return nil
}
