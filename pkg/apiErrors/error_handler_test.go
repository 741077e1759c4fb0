package apiErrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-control-api/internal/domain"
)

func TestCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"validação", domain.NewValidationError("status", "inválido"), ErrInvalidRequest},
		{"não encontrado", fmt.Errorf("wrap: %w", domain.NewNotFoundError("account", "act_1")), ErrResourceNotFound},
		{"configuração", domain.NewConfigError("META_ACCESS_TOKEN", "ausente"), ErrConfiguration},
		{"remoto definitivo", &domain.RemoteError{Op: "list", StatusCode: 400, Err: errors.New("bad")}, ErrExternalService},
		{"remoto repetível", &domain.RemoteError{Op: "list", Retryable: true, Err: domain.ErrTimeout}, ErrCommunication},
		{"desconhecido", errors.New("boom"), ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, CodeFor(tt.err))
		})
	}
}

func TestWriteDomainError_RetryableSetsRetryAfter(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteDomainError(rec, &domain.RemoteError{Op: "insights", Retryable: true, Err: domain.ErrTimeout}, nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrCommunication, body.Code)
}

func TestWriteDomainError_InternalHidesMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteDomainError(rec, errors.New("pq: senha incorreta"), nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Retry-After"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Erro interno do servidor", body.Message)
}
