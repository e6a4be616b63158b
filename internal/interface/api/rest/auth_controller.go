package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shelter-admin-api/internal/application/ports"
	"shelter-admin-api/internal/application/services"
	"shelter-admin-api/internal/interface/api/rest/dto/auth"
	"shelter-admin-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger        *zap.Logger
	personService ports.PersonService
	authService   ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	personService ports.PersonService,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:        logger,
		personService: personService,
		authService:   authService,
	}

	r.POST(RouteLogin, ac.LoginHandler)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	p, err := ac.personService.FindPersonByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a person"},
		)
		ac.logger.Error("FindPersonByEmail() error", zap.Error(err))
		return
	}
	if p == nil {
		// an inactive or deleted aggregate answers like an unknown one
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid credentials"},
		)
		return
	}

	token, err := ac.authService.GenerateToken(p, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Uint64("person_id", uint64(p.ID)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
	})
}
