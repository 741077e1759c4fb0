package authenticating

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-control-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore verifica usuário e segredo.
// Usuário desconhecido ou segredo errado devolve nil, nil.
type CredentialStore interface {
	Verify(ctx context.Context, username, secret string) (*domain.Identity, error)
}

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

type credential struct {
	secret string
	hashed bool
}

// StaticCredentialStore guarda as credenciais lidas de AUTH_USERS
type StaticCredentialStore struct {
	users map[string]credential
}

// NewStaticCredentialStore interpreta entradas "usuario:segredo".
// Segredos com prefixo bcrypt são comparados pelo hash, os demais em tempo constante.
func NewStaticCredentialStore(entries []string) (*StaticCredentialStore, error) {
	store := &StaticCredentialStore{users: make(map[string]credential, len(entries))}

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		username, secret, ok := strings.Cut(entry, ":")
		username = strings.TrimSpace(username)
		if !ok || username == "" || secret == "" {
			return nil, fmt.Errorf("%w: entrada de AUTH_USERS sem usuário ou segredo", ErrMalformedCredential)
		}

		cred := credential{secret: secret, hashed: isBcryptHash(secret)}
		if !cred.hashed {
			logrus.WithField("username", username).Warn("Segredo em texto puro em AUTH_USERS, prefira um hash bcrypt")
		}

		store.users[username] = cred
	}

	if len(store.users) == 0 {
		logrus.Warn("Nenhum usuário configurado em AUTH_USERS, login desabilitado")
	}

	return store, nil
}

func (s *StaticCredentialStore) Verify(_ context.Context, username, secret string) (*domain.Identity, error) {
	cred, ok := s.users[username]
	if !ok {
		return nil, nil
	}

	if cred.hashed {
		err := bcrypt.CompareHashAndPassword([]byte(cred.secret), []byte(secret))
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao comparar hash do usuário %s: %w", username, err)
		}
		return &domain.Identity{Username: username}, nil
	}

	if subtle.ConstantTimeCompare([]byte(cred.secret), []byte(secret)) != 1 {
		return nil, nil
	}

	return &domain.Identity{Username: username}, nil
}

func isBcryptHash(secret string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(secret, prefix) {
			return true
		}
	}
	return false
}
