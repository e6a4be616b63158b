package services

import (
	"errors"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shelter-admin-api/internal/application/ports"
	"shelter-admin-api/internal/domain/person"
	"shelter-admin-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

const tokenTTL = time.Hour

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(
	jwtService *jwt.Service,
) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
	}
}

func (as *AuthService) GenerateToken(p *person.Person, requestPassword string) (string, error) {
	if p.Credential.PasswordHash == nil {
		return "", ErrInvalidCredentials
	}
	err := bcrypt.CompareHashAndPassword([]byte(*p.Credential.PasswordHash), []byte(requestPassword))
	if err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(
		strconv.FormatUint(uint64(p.ID), 10),
		string(p.Credential.Role),
		tokenTTL,
	)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
