package authenticating

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-control-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func TestStaticCredentialStore_Verify(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo-hash"), bcrypt.MinCost)
	require.NoError(t, err)

	store, err := NewStaticCredentialStore([]string{
		"snafu:segredo",
		"sid:" + string(hash),
		"  ",
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		secret   string
		want     *domain.Identity
	}{
		{name: "Texto puro correto", username: "snafu", secret: "segredo", want: &domain.Identity{Username: "snafu"}},
		{name: "Texto puro incorreto", username: "snafu", secret: "outro"},
		{name: "Hash bcrypt correto", username: "sid", secret: "segredo-hash", want: &domain.Identity{Username: "sid"}},
		{name: "Hash bcrypt incorreto", username: "sid", secret: "segredo"},
		{name: "Usuário desconhecido", username: "nobody", secret: "segredo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := store.Verify(context.Background(), tt.username, tt.secret)
			require.NoError(t, err)
			assert.Equal(t, tt.want, identity)
		})
	}
}

func TestStaticCredentialStore_SecretMayContainColon(t *testing.T) {
	store, err := NewStaticCredentialStore([]string{"snafu:a:b"})
	require.NoError(t, err)

	identity, err := store.Verify(context.Background(), "snafu", "a:b")
	require.NoError(t, err)
	assert.NotNil(t, identity)
}

func TestNewStaticCredentialStore_Malformed(t *testing.T) {
	for _, entry := range []string{"semsegredo", ":segredo", "snafu:"} {
		_, err := NewStaticCredentialStore([]string{entry})
		assert.True(t, errors.Is(err, ErrMalformedCredential), entry)
	}
}
