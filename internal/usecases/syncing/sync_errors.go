package syncing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ad-control-api/pkg/apiErrors"
)

var (
	// ErrSyncInProgress é devolvido quando outra sincronização ainda está rodando
	ErrSyncInProgress = errors.New("sincronização já em andamento")
)

// SyncError é um erro que aborta a execução inteira da sincronização
type SyncError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Details, e.Err.Error())
	}
	return e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError classifica o erro pelo código da API a partir da categoria de domínio
func NewSyncError(err error, details string) *SyncError {
	code := apiErrors.CodeFor(err)
	if errors.Is(err, ErrSyncInProgress) {
		code = apiErrors.ErrConflict
	}

	return &SyncError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
