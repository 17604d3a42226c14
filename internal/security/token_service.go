package security

import (
	"errors"
	"time"

	"go-empdir/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenResult carries the signed access token together with its expiry
// so callers never have to decode the token to learn when it dies.
type TokenResult struct {
	AccessToken string
	ExpiresAt   time.Time
}

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

//go:generate mockgen -source=token_service.go -destination=mock/token_service_mock.go -package=mock
type TokenService interface {
	Generate(userID uuid.UUID, email string, role domain.Role) (TokenResult, error)
	Validate(tokenStr string) (*Claims, error)
}

type tokenService struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenService(secret string, lifetime time.Duration) TokenService {
	return &tokenService{secret: []byte(secret), lifetime: lifetime}
}

func (s *tokenService) Generate(userID uuid.UUID, email string, role domain.Role) (TokenResult, error) {
	expiresAt := time.Now().Add(s.lifetime)

	claims := Claims{
		Email: email,
		Role:  role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return TokenResult{}, err
	}

	return TokenResult{AccessToken: signed, ExpiresAt: expiresAt}, nil
}

func (s *tokenService) Validate(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, jwt.ErrTokenExpired
		}
		return nil, errors.New("invalid token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
