package authenticating

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-control-api/internal/config"
	"github.com/vfg2006/ad-control-api/internal/domain"
	"github.com/vfg2006/ad-control-api/pkg/apiErrors"
)

type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, *domain.Identity, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	store     CredentialStore
	secretKey string
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewService(store CredentialStore, cfg *config.Config) Authenticator {
	return &Service{
		store:     store,
		secretKey: cfg.SecretKey,
		tokenTTL:  cfg.Auth.TokenTTL,
		now:       time.Now,
	}
}

func (s *Service) Login(ctx context.Context, username, password string) (string, *domain.Identity, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return "", nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	identity, err := s.store.Verify(ctx, username, password)
	if err != nil {
		logrus.WithField("username", username).WithError(err).Error("Erro ao verificar credenciais")
		return "", nil, NewUserAuthError(err, apiErrors.ErrInternalServer, username, "Erro ao verificar credenciais")
	}

	if identity == nil {
		return "", nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, username, "Usuário ou senha incorretos")
	}

	token, err := s.generateJWT(identity)
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, identity, nil
}

func (s *Service) generateJWT(identity *domain.Identity) (string, error) {
	now := s.now()

	claims := domain.Claims{
		Username: identity.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
}
