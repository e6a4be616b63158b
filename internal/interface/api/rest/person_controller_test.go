package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shelter-admin-api/internal/application/ports"
	domain "shelter-admin-api/internal/domain/person"
	jwtSvc "shelter-admin-api/internal/infrastructure/jwt"
	"shelter-admin-api/internal/interface/api/rest/dto/person"
	"shelter-admin-api/internal/interface/api/rest/middleware"
)

type FakePersonService struct {
	FindPersonByIDFunc    func(ctx context.Context, id domain.ID) (*domain.Person, error)
	FindPersonByEmailFunc func(ctx context.Context, email string) (*domain.Person, error)
	FindPersonsFunc       func(ctx context.Context, filter domain.Filter) (domain.Persons, error)
	CreatePersonFunc      func(ctx context.Context, p domain.Person, password string) (*domain.Person, error)
	UpdatePersonFunc      func(ctx context.Context, id domain.ID, changes domain.Changes, password *string) (*domain.Person, error)
	DeletePersonFunc      func(ctx context.Context, id domain.ID) (bool, error)
}

func (f *FakePersonService) FindPersonByID(ctx context.Context, id domain.ID) (*domain.Person, error) {
	if f.FindPersonByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindPersonByIDFunc(ctx, id)
}
func (f *FakePersonService) FindPersonByEmail(ctx context.Context, email string) (*domain.Person, error) {
	if f.FindPersonByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindPersonByEmailFunc(ctx, email)
}
func (f *FakePersonService) FindPersons(ctx context.Context, filter domain.Filter) (domain.Persons, error) {
	if f.FindPersonsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindPersonsFunc(ctx, filter)
}
func (f *FakePersonService) CreatePerson(ctx context.Context, p domain.Person, password string) (*domain.Person, error) {
	if f.CreatePersonFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreatePersonFunc(ctx, p, password)
}
func (f *FakePersonService) UpdatePerson(ctx context.Context, id domain.ID, changes domain.Changes, password *string) (*domain.Person, error) {
	if f.UpdatePersonFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdatePersonFunc(ctx, id, changes, password)
}
func (f *FakePersonService) DeletePerson(ctx context.Context, id domain.ID) (bool, error) {
	if f.DeletePersonFunc == nil {
		return false, errors.New("not used")
	}
	return f.DeletePersonFunc(ctx, id)
}

const testSecret = "test-secret"

func setupRouter(t *testing.T, ps ports.PersonService, secret string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	logger := zap.NewNop()
	j := jwtSvc.New(secret)

	authGate := middleware.AuthMiddleware(j, ps, logger)
	NewPersonController(r, ps, logger, authGate)

	return r
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func signJWT(t *testing.T, secret, userID string, exp time.Duration) string {
	t.Helper()
	type Claims struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
		jwtv5.RegisteredClaims
	}
	claims := Claims{
		UserID: userID,
		Role:   "USER",
		RegisteredClaims: jwtv5.RegisteredClaims{
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(exp)),
		},
	}
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func someDomainPerson(id domain.ID, role domain.Role) *domain.Person {
	email := "ada@shelter.org"
	return &domain.Person{
		ID:     id,
		Name:   "Ada",
		Email:  &email,
		Phone:  "+33612345678",
		Active: true,
		Credential: domain.Credential{
			ID:     uint64(id) + 100,
			Role:   role,
			Active: true,
		},
	}
}

func validCreateRequest() person.Request {
	return person.Request{
		Name:     "Ada",
		Email:    "ada@shelter.org",
		Phone:    "+33612345678",
		Role:     "USER",
		Password: "hunter2hunter2",
	}
}

func errBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestAuthGate_RejectionMatrix(t *testing.T) {
	activeSubject := someDomainPerson(7, domain.RoleUser)

	ps := &FakePersonService{
		FindPersonByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Person, error) {
			if id == 7 {
				return activeSubject, nil
			}
			// deactivated or never existed: same answer
			return nil, nil
		},
		FindPersonsFunc: func(ctx context.Context, filter domain.Filter) (domain.Persons, error) {
			return domain.Persons{activeSubject}, nil
		},
	}

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantErr    string
	}{
		{
			name:       "no Authorization header",
			headers:    nil,
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:       "header without Bearer prefix",
			headers:    map[string]string{"Authorization": signJWT(t, testSecret, "7", time.Hour)},
			wantStatus: http.StatusUnauthorized,
			wantErr:    "invalid token format",
		},
		{
			name:       "expired token",
			headers:    bearer(signJWT(t, testSecret, "7", -time.Minute)),
			wantStatus: http.StatusUnauthorized,
			wantErr:    "token expired",
		},
		{
			name:       "token signed with another secret",
			headers:    bearer(signJWT(t, "other-secret", "7", time.Hour)),
			wantStatus: http.StatusUnauthorized,
			wantErr:    "invalid token",
		},
		{
			name:       "token without numeric subject",
			headers:    bearer(signJWT(t, testSecret, "nobody", time.Hour)),
			wantStatus: http.StatusUnauthorized,
			wantErr:    "invalid token payload",
		},
		{
			name:       "subject soft-deleted after issuance",
			headers:    bearer(signJWT(t, testSecret, "666", time.Hour)),
			wantStatus: http.StatusUnauthorized,
			wantErr:    "unknown subject",
		},
		{
			name:       "active subject admitted",
			headers:    bearer(signJWT(t, testSecret, "7", time.Hour)),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, ps, testSecret)
			rr := doReq(t, r, http.MethodGet, "/api/v1/persons", nil, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errBody(t, rr)["error"])
			}
		})
	}
}

func TestAuthGate_MisconfiguredSecretIsServerFault(t *testing.T) {
	ps := &FakePersonService{}
	r := setupRouter(t, ps, "")

	rr := doReq(t, r, http.MethodGet, "/api/v1/persons", nil, bearer(signJWT(t, testSecret, "7", time.Hour)))
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "authentication unavailable", errBody(t, rr)["error"])
}

func TestCreatePersonHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		mockPS     func() *FakePersonService
		wantStatus int
		wantErr    string
	}{
		{
			name: "201 created without any token",
			body: validCreateRequest(),
			mockPS: func() *FakePersonService {
				return &FakePersonService{
					CreatePersonFunc: func(ctx context.Context, p domain.Person, password string) (*domain.Person, error) {
						return someDomainPerson(1, domain.RoleAdmin), nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "400 malformed json",
			body:       "{not json",
			mockPS:     func() *FakePersonService { return &FakePersonService{} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "400 missing password",
			body: person.Request{Name: "Ada", Email: "ada@shelter.org", Role: "USER"},
			mockPS: func() *FakePersonService {
				return &FakePersonService{}
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "409 duplicate email",
			body: validCreateRequest(),
			mockPS: func() *FakePersonService {
				return &FakePersonService{
					CreatePersonFunc: func(ctx context.Context, p domain.Person, password string) (*domain.Person, error) {
						return nil, &domain.DuplicateError{Field: "email"}
					},
				}
			},
			wantStatus: http.StatusConflict,
			wantErr:    "email already exists",
		},
		{
			name: "500 repository failure",
			body: validCreateRequest(),
			mockPS: func() *FakePersonService {
				return &FakePersonService{
					CreatePersonFunc: func(ctx context.Context, p domain.Person, password string) (*domain.Person, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to create a person",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockPS(), testSecret)
			rr := doReq(t, r, http.MethodPost, "/api/v1/persons", tt.body, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errBody(t, rr)["error"])
			}
			if tt.wantStatus == http.StatusCreated {
				var resp person.Person
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.NotContains(t, rr.Body.String(), "password")
			}
		})
	}
}

func TestUpdatePersonHandler_ImplicitSelfTarget(t *testing.T) {
	var gotID domain.ID
	ps := &FakePersonService{
		FindPersonByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Person, error) {
			return someDomainPerson(7, domain.RoleUser), nil
		},
		UpdatePersonFunc: func(ctx context.Context, id domain.ID, changes domain.Changes, password *string) (*domain.Person, error) {
			gotID = id
			p := someDomainPerson(id, domain.RoleUser)
			if changes.Name != nil {
				p.Name = *changes.Name
			}
			return p, nil
		},
	}
	r := setupRouter(t, ps, testSecret)

	// no id in the path: the caller's own identity is the target
	rr := doReq(t, r, http.MethodPut, "/api/v1/persons",
		person.UpdateRequest{Name: strPtr("Ada Lovelace")},
		bearer(signJWT(t, testSecret, "7", time.Hour)),
	)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.ID(7), gotID)

	// explicit id still wins
	rr = doReq(t, r, http.MethodPut, "/api/v1/persons/33",
		person.UpdateRequest{Name: strPtr("Ada Lovelace")},
		bearer(signJWT(t, testSecret, "7", time.Hour)),
	)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.ID(33), gotID)
}

func TestUpdatePersonHandler_NotFound(t *testing.T) {
	ps := &FakePersonService{
		FindPersonByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Person, error) {
			return someDomainPerson(7, domain.RoleUser), nil
		},
		UpdatePersonFunc: func(ctx context.Context, id domain.ID, changes domain.Changes, password *string) (*domain.Person, error) {
			return nil, domain.ErrNotFound
		},
	}
	r := setupRouter(t, ps, testSecret)

	rr := doReq(t, r, http.MethodPut, "/api/v1/persons/404",
		person.UpdateRequest{Name: strPtr("Ghost")},
		bearer(signJWT(t, testSecret, "7", time.Hour)),
	)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeletePersonHandler_ImplicitSelfTargetAndIdempotency(t *testing.T) {
	var gotID domain.ID
	calls := 0
	ps := &FakePersonService{
		FindPersonByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Person, error) {
			return someDomainPerson(7, domain.RoleUser), nil
		},
		DeletePersonFunc: func(ctx context.Context, id domain.ID) (bool, error) {
			gotID = id
			calls++
			return calls == 1, nil
		},
	}
	r := setupRouter(t, ps, testSecret)

	rr := doReq(t, r, http.MethodDelete, "/api/v1/persons", nil, bearer(signJWT(t, testSecret, "7", time.Hour)))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.ID(7), gotID)

	var resp person.DeleteResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Deleted)

	// second delete: still 200, just reports no effect
	rr = doReq(t, r, http.MethodDelete, "/api/v1/persons", nil, bearer(signJWT(t, testSecret, "7", time.Hour)))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Deleted)
}

func TestGetPersonHandler(t *testing.T) {
	okPerson := someDomainPerson(7, domain.RoleUser)

	tests := []struct {
		name       string
		personID   string
		mockPS     func() *FakePersonService
		wantStatus int
		wantErr    string
	}{
		{
			name:     "400 invalid id",
			personID: "not-a-number",
			mockPS: func() *FakePersonService {
				return &FakePersonService{
					FindPersonByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Person, error) {
						return okPerson, nil
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "person_id must be a positive integer",
		},
		{
			name:     "404 soft-deleted aggregate",
			personID: "12",
			mockPS: func() *FakePersonService {
				return &FakePersonService{
					FindPersonByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Person, error) {
						if id == 7 {
							return okPerson, nil
						}
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "person not found",
		},
		{
			name:     "200 found",
			personID: "7",
			mockPS: func() *FakePersonService {
				return &FakePersonService{
					FindPersonByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Person, error) {
						return okPerson, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockPS(), testSecret)
			rr := doReq(t, r, http.MethodGet, "/api/v1/persons/"+tt.personID, nil,
				bearer(signJWT(t, testSecret, "7", time.Hour)))
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errBody(t, rr)["error"])
			}
		})
	}
}

func TestGetPersonsHandler_RoleFilter(t *testing.T) {
	var gotFilter domain.Filter
	ps := &FakePersonService{
		FindPersonByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Person, error) {
			return someDomainPerson(7, domain.RoleAdmin), nil
		},
		FindPersonsFunc: func(ctx context.Context, filter domain.Filter) (domain.Persons, error) {
			gotFilter = filter
			return domain.Persons{someDomainPerson(1, domain.RoleUser)}, nil
		},
	}
	r := setupRouter(t, ps, testSecret)

	rr := doReq(t, r, http.MethodGet, "/api/v1/persons?term=ada&role=user", nil,
		bearer(signJWT(t, testSecret, "7", time.Hour)))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ada", gotFilter.Term)
	require.NotNil(t, gotFilter.Role)
	assert.Equal(t, domain.RoleUser, *gotFilter.Role)

	rr = doReq(t, r, http.MethodGet, "/api/v1/persons?role=butler", nil,
		bearer(signJWT(t, testSecret, "7", time.Hour)))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func strPtr(s string) *string { return &s }
