package jwt

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Each failure kind maps to its own transport outcome: expiry and
// signature failures are client-actionable 401s, a missing signing
// secret is an operational fault and must surface as a 5xx.
var (
	ErrSecretNotConfigured = errors.New("jwt signing secret is not configured")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("invalid token")
	ErrInvalidPayload      = errors.New("token payload carries no usable subject")
)

type Service struct {
	jwtSecret string
}

func New(jwtSecret string) *Service { return &Service{jwtSecret: jwtSecret} }

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (s *Service) GenerateJWT(userID, role string, expiresIn time.Duration) (string, error) {
	if s.jwtSecret == "" {
		return "", ErrSecretNotConfigured
	}

	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken verifies signature and expiry and returns the numeric
// subject id from the payload. Pure validation, no I/O.
func (s *Service) ValidateToken(tokenStr string) (uint64, *Claims, error) {
	if s.jwtSecret == "" {
		return 0, nil, ErrSecretNotConfigured
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, nil, ErrTokenExpired
		}
		return 0, nil, ErrTokenInvalid
	}
	if !token.Valid {
		return 0, nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return 0, nil, ErrTokenInvalid
	}

	subject, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil || subject == 0 {
		return 0, nil, ErrInvalidPayload
	}

	return subject, claims, nil
}
