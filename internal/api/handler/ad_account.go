package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-control-api/internal/domain"
	"github.com/vfg2006/ad-control-api/internal/usecases/account"
	"github.com/vfg2006/ad-control-api/internal/usecases/controlling"
	"github.com/vfg2006/ad-control-api/pkg/apiErrors"
	"github.com/vfg2006/ad-control-api/pkg/log"
	"github.com/vfg2006/ad-control-api/pkg/middleware"
)

func AdAccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.ListAccounts(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar contas")
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, accounts)
	})
}

func GetAdAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		details, err := service.GetAccountDetails(r.Context(), id)
		if err != nil {
			log.ForContext(r.Context()).WithField("account_id", id).WithError(err).Error("Erro ao buscar detalhes da conta")
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, details)
	})
}

func PauseAllCampaigns(service controlling.ControlService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		actor := middleware.ActorFromContext(r.Context())

		log.ForContext(r.Context()).WithFields(log.Fields{
			"account_id":   id,
			"performed_by": actor,
		}).Info("INIT - PauseAllCampaigns")

		action, err := service.PauseAllCampaigns(r.Context(), actor, id)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, action)
	})
}

// ListAccountActions lista a trilha de auditoria de uma conta
func ListAccountActions(service account.AccountService) http.Handler {
	return listActions(service, func(r *http.Request) string {
		return httprouter.ParamsFromContext(r.Context()).ByName("id")
	})
}

// ListActions lista a trilha de auditoria geral, com ?account_id= opcional
func ListActions(service account.AccountService) http.Handler {
	return listActions(service, func(r *http.Request) string {
		return r.URL.Query().Get("account_id")
	})
}

func listActions(service account.AccountService, accountID func(r *http.Request) string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
			return
		}

		actions, err := service.ListActions(r.Context(), domain.ActionFilter{
			AdAccountID: accountID(r),
			Limit:       limit,
		})
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, actions)
	})
}

func DashboardSummary(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context())
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}
