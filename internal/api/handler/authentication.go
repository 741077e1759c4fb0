package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/ad-control-api/internal/domain"
	"github.com/vfg2006/ad-control-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-control-api/pkg/apiErrors"
	"github.com/vfg2006/ad-control-api/pkg/log"
	"github.com/vfg2006/ad-control-api/pkg/middleware"
)

// CookieOptions controla o cookie de sessão
type CookieOptions struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

func Login(service authenticating.Authenticator, cookie CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		token, identity, err := service.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithField("username", req.Username).WithError(err).Warn("Falha no login")
			writeUsecaseError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookie.Name,
			Value:    token,
			Path:     "/",
			MaxAge:   int(cookie.TTL.Seconds()),
			HttpOnly: true,
			Secure:   cookie.Secure,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, http.StatusOK, domain.LoginResponse{Success: true, User: identity})
	}
}

func Logout(cookie CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     cookie.Name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
			Secure:   cookie.Secure,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// GetMe retorna a identidade da sessão atual
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.Identity{Username: claims.Username})
	}
}
