package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/sales-visualiser/internal/config"
	"github.com/vfg2006/sales-visualiser/internal/domain"
	"github.com/vfg2006/sales-visualiser/pkg/apiErrors"
)

const tokenIssuer = "sales-visualiser"

type Authenticator interface {
	GenerateToken(subject string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secretKey: cfg.SecretKey,
		ttl:       cfg.Auth.AdminTokenTTL,
		now:       time.Now,
	}
}

// GenerateToken emite um token HS256 com papel de administrador para o operador informado.
func (s *Service) GenerateToken(subject string) (string, error) {
	if s.secretKey == "" {
		return "", ErrMissingSecret
	}

	issuedAt := s.now()
	claims := domain.Claims{
		Role: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken recusa qualquer token enquanto SECRET_KEY não estiver configurada.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if s.secretKey == "" {
		return nil, NewAuthError(ErrMissingSecret, apiErrors.ErrInvalidToken, "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
