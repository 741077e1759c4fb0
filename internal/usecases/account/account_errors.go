package account

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ad-control-api/pkg/apiErrors"
)

// Erros específicos para o contexto de contas
var (
	ErrFetchAccounts = errors.New("error fetching accounts from database")
	ErrFetchMetrics  = errors.New("error fetching metrics from database")
	ErrFetchActions  = errors.New("error fetching actions from database")
)

// AccountError é um erro com contexto adicional para contas
type AccountError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // ID da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError cria um novo AccountError
func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAccountErrorWithID classifica o erro pela categoria de domínio e guarda a conta envolvida
func NewAccountErrorWithID(err error, accountID string, details string) *AccountError {
	return &AccountError{
		Err:       err,
		Code:      apiErrors.CodeFor(err),
		AccountID: accountID,
		Details:   details,
	}
}
