package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-control-api/internal/domain"
	"github.com/vfg2006/ad-control-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-control-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"

	SyncSecretHeader = "X-Sync-Secret"
	SyncPath         = "/v1/sync"
	CronActor        = "cron"
)

var publicPaths = map[string]bool{
	"/healthcheck": true,
	"/metrics":     true,
	"/v1/login":    true,
	"/v1/logout":   true,
}

type AuthOptions struct {
	CookieName string
	SyncSecret string
}

// AuthMiddleware aceita o cookie de sessão ou Authorization: Bearer.
// Em /v1/sync também aceita o header X-Sync-Secret quando SYNC_TRIGGER_SECRET está configurado.
func AuthMiddleware(authService authenticating.Authenticator, opts AuthOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			if r.URL.Path == SyncPath && validSyncSecret(opts.SyncSecret, r.Header.Get(SyncSecretHeader)) {
				claims := &domain.Claims{Username: CronActor}
				next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
				return
			}

			tokenString := tokenFromRequest(r, opts.CookieName)
			if tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				logrus.WithField("path", r.URL.Path).WithError(err).Warn("Token rejeitado")

				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) {
					apiErrors.WriteError(w, authErr.Code, "Sessão inválida ou expirada", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão inválida ou expirada", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if cookieName != "" {
		if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}

func validSyncSecret(expected, received string) bool {
	if expected == "" || received == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(received)) == 1
}

// WithClaims guarda a identidade autenticada no contexto
func WithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyUser, claims)
}
