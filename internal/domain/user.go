package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity é o usuário autenticado devolvido pelo CredentialStore
type Identity struct {
	Username string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success bool      `json:"success"`
	User    *Identity `json:"user"`
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
