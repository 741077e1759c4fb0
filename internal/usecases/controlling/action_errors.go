package controlling

import (
	"fmt"

	"github.com/vfg2006/ad-control-api/pkg/apiErrors"
)

// ActionError é um erro com contexto adicional para ações de controle
type ActionError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // Conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

func (e *ActionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Details, e.Err.Error())
	}
	return e.Err.Error()
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// NewActionError classifica o erro pelo código da API a partir da categoria de domínio
func NewActionError(err error, accountID string, details string) *ActionError {
	return &ActionError{
		Err:       err,
		Code:      apiErrors.CodeFor(err),
		AccountID: accountID,
		Details:   details,
	}
}
