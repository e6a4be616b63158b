package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shelter-admin-api/internal/application/ports"
	domain "shelter-admin-api/internal/domain/person"
	"shelter-admin-api/internal/interface/api/rest/dto/person"
	"shelter-admin-api/internal/interface/api/rest/middleware"
	"shelter-admin-api/internal/interface/api/rest/validator"
)

type PersonController struct {
	personService ports.PersonService
	logger        *zap.Logger
}

func NewPersonController(
	r *gin.Engine,
	personService ports.PersonService,
	logger *zap.Logger,
	authGate gin.HandlerFunc,
) *PersonController {
	pc := &PersonController{
		personService: personService,
		logger:        logger,
	}

	// POST stays open: the very first registration happens before any
	// credential exists to authenticate with.
	r.POST(RoutePersons, pc.CreatePersonHandler)
	r.GET(RoutePersons, authGate, pc.GetPersonsHandler)
	r.GET(RoutePerson, authGate, pc.GetPersonHandler)
	// The id-less variants act on the caller's own identity.
	r.PUT(RoutePersons, authGate, pc.UpdatePersonHandler)
	r.PUT(RoutePerson, authGate, pc.UpdatePersonHandler)
	r.DELETE(RoutePersons, authGate, pc.DeletePersonHandler)
	r.DELETE(RoutePerson, authGate, pc.DeletePersonHandler)

	return pc
}

// targetID resolves the aggregate a mutation acts on: the explicit
// path id when given, otherwise the identity the auth gate resolved.
func targetID(c *gin.Context) (domain.ID, error) {
	if raw := c.Param("person_id"); raw != "" {
		id, err := validator.ParseID(raw)
		if err != nil {
			return 0, errors.New("person_id must be a positive integer")
		}
		return domain.ID(id), nil
	}

	id, ok := middleware.IdentityID(c)
	if !ok {
		return 0, errors.New("no target identity")
	}
	return id, nil
}

func (pc *PersonController) GetPersonsHandler(c *gin.Context) {
	role, err := validator.ValidateRoleFilter(c.Query("role"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	filter := domain.Filter{
		Term: c.Query("term"),
		Role: role,
	}

	persons, err := pc.personService.FindPersons(c.Request.Context(), filter)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get persons"},
		)
		pc.logger.Error("FindPersons() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, person.ResponseData{
		Data: person.ToResponsePersons(persons),
	})
}

func (pc *PersonController) GetPersonHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("person_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "person_id must be a positive integer"},
		)
		return
	}

	p, err := pc.personService.FindPersonByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a person"},
		)
		pc.logger.Error("FindPersonByID() error", zap.Error(err))
		return
	}

	if p == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "person not found"},
		)
		return
	}

	c.JSON(http.StatusOK, person.ToResponsePerson(*p))
}

func (pc *PersonController) CreatePersonHandler(c *gin.Context) {
	var req person.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateCreatePerson(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	p, err := pc.personService.CreatePerson(c.Request.Context(), person.ToDomainPerson(req), req.Password)
	if err != nil {
		var dup *domain.DuplicateError
		var invalid *domain.ValidationError
		switch {
		case errors.As(err, &dup):
			c.JSON(http.StatusConflict, gin.H{"error": dup.Error(), "field": dup.Field})
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error(), "field": invalid.Field})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to create a person"},
			)
			pc.logger.Error("CreatePerson() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusCreated, person.ToResponsePerson(*p))
}

func (pc *PersonController) UpdatePersonHandler(c *gin.Context) {
	id, err := targetID(c)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	acting, _ := middleware.Identity(c)
	if !middleware.CanActOn(acting, id, middleware.OpWrite) {
		c.JSON(
			http.StatusForbidden,
			gin.H{"error": "not allowed"},
		)
		return
	}

	var req person.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUpdatePerson(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	changes, password := person.ToChanges(req)

	p, err := pc.personService.UpdatePerson(c.Request.Context(), id, changes, password)
	if err != nil {
		var dup *domain.DuplicateError
		var invalid *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
		case errors.As(err, &dup):
			c.JSON(http.StatusConflict, gin.H{"error": dup.Error(), "field": dup.Field})
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error(), "field": invalid.Field})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to update a person"},
			)
			pc.logger.Error("UpdatePerson() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, person.ToResponsePerson(*p))
}

func (pc *PersonController) DeletePersonHandler(c *gin.Context) {
	id, err := targetID(c)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	acting, _ := middleware.Identity(c)
	if !middleware.CanActOn(acting, id, middleware.OpDelete) {
		c.JSON(
			http.StatusForbidden,
			gin.H{"error": "not allowed"},
		)
		return
	}

	deleted, err := pc.personService.DeletePerson(c.Request.Context(), id)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete person"},
		)
		pc.logger.Error("DeletePerson() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, person.DeleteResponse{Deleted: deleted})
}
