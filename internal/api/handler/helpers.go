package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-control-api/internal/usecases/account"
	"github.com/vfg2006/ad-control-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-control-api/internal/usecases/controlling"
	"github.com/vfg2006/ad-control-api/internal/usecases/syncing"
	"github.com/vfg2006/ad-control-api/pkg/apiErrors"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeAndValidate lê o corpo JSON e aplica as tags validate. Escreve o erro 400 e devolve false em caso de falha.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			details := make(map[string]string, len(validationErrs))
			for _, fe := range validationErrs {
				details[strings.ToLower(fe.Field())] = validationMessage(fe)
			}
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados obrigatórios ausentes", details)
			return false
		}

		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return false
	}

	return true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "oneof":
		return "valor deve ser um de: " + fe.Param()
	default:
		return "valor inválido"
	}
}

// parseLimit lê ?limit=. Ausente devolve 0 e o serviço aplica o padrão.
func parseLimit(r *http.Request) (uint64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return 0, nil
	}

	return strconv.ParseUint(raw, 10, 64)
}

// writeUsecaseError usa o código carregado pelo erro do caso de uso, ou a categoria de domínio
func writeUsecaseError(w http.ResponseWriter, err error) {
	code, details := "", map[string]any(nil)

	var (
		syncErr    *syncing.SyncError
		actionErr  *controlling.ActionError
		accountErr *account.AccountError
		authErr    *authenticating.AuthError
	)

	switch {
	case errors.As(err, &syncErr):
		code = syncErr.Code
	case errors.As(err, &actionErr):
		code = actionErr.Code
		if actionErr.AccountID != "" {
			details = map[string]any{"account_id": actionErr.AccountID}
		}
	case errors.As(err, &accountErr):
		code = accountErr.Code
		if accountErr.AccountID != "" {
			details = map[string]any{"account_id": accountErr.AccountID}
		}
	case errors.As(err, &authErr):
		code = authErr.Code
	default:
		apiErrors.WriteDomainError(w, err, nil)
		return
	}

	apiErrors.WriteError(w, code, publicMessage(code, err), details)
}

// publicMessage esconde o texto de erros internos
func publicMessage(code string, err error) string {
	if err == nil || code == apiErrors.ErrInternalServer {
		return "Erro interno do servidor"
	}
	return err.Error()
}
