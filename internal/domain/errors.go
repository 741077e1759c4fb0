package domain

import (
	"errors"
	"fmt"
)

// Categorias de erro. Use errors.Is para distinguir.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrRemoteCall    = errors.New("remote call error")
	ErrTimeout       = errors.New("remote call timed out")
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation error")
)

// ConfigError indica uma configuração obrigatória ausente ou inválida
type ConfigError struct {
	Key     string
	Message string
}

func NewConfigError(key, message string) *ConfigError {
	return &ConfigError{Key: key, Message: message}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrConfiguration.Error(), e.Message, e.Key)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// RemoteError envolve falhas da plataforma de anúncios (rede, timeout, resposta não 2xx)
type RemoteError struct {
	Op         string
	StatusCode int
	Retryable  bool
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", ErrRemoteCall.Error(), e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrRemoteCall.Error(), e.Op, e.Err)
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteCall
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsRetryable informa se o erro (ou algum erro envolvido) é um RemoteError que pode ser repetido
func IsRetryable(err error) bool {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Retryable
	}
	return false
}

// NotFoundError indica que o alvo de uma ação não existe
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Resource, ErrNotFound.Error(), e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError indica uma entrada malformada, rejeitada antes de qualquer efeito colateral
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
