package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/ad-control-api/internal/domain"
	"github.com/vfg2006/ad-control-api/internal/scheduler"
	"github.com/vfg2006/ad-control-api/internal/usecases/syncing"
	"github.com/vfg2006/ad-control-api/pkg/apiErrors"
	"github.com/vfg2006/ad-control-api/pkg/log"
	"github.com/vfg2006/ad-control-api/pkg/middleware"
)

// RunSync executa a sincronização de forma síncrona e devolve o resultado. Com ?async=true apenas dispara a execução.
func RunSync(sched scheduler.AccountSyncScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("performed_by", middleware.ActorFromContext(r.Context()))
		logger.Info("INIT - RunSync")

		if r.URL.Query().Get("async") == "true" {
			runSyncAsync(w, sched)
			return
		}

		// a sincronização continua mesmo se o cliente desconectar
		result, err := sched.RunNow(context.WithoutCancel(r.Context()))
		if err != nil {
			logger.WithError(err).Error("Erro ao executar sincronização")
			writeSyncFailure(w, err)
			return
		}

		message := fmt.Sprintf("%d contas sincronizadas", result.AccountsSynced)
		if result.AccountsFailed > 0 {
			message = fmt.Sprintf("%d contas sincronizadas, %d com falha", result.AccountsSynced, result.AccountsFailed)
		}

		writeJSON(w, http.StatusOK, domain.SyncResponse{
			Success:   true,
			Message:   message,
			Timestamp: time.Now().UTC(),
			Result:    result,
		})
	}
}

// runSyncAsync dispara a sincronização em segundo plano e responde 202, ou 409 se já houver uma rodando
func runSyncAsync(w http.ResponseWriter, sched scheduler.AccountSyncScheduler) {
	if !sched.TriggerManualSync() {
		writeSyncFailure(w, syncing.NewSyncError(syncing.ErrSyncInProgress, ""))
		return
	}

	writeJSON(w, http.StatusAccepted, domain.SyncResponse{
		Success:   true,
		Message:   "Sincronização iniciada em segundo plano",
		Timestamp: time.Now().UTC(),
	})
}

// writeSyncFailure mantém o envelope da sincronização também nas falhas
func writeSyncFailure(w http.ResponseWriter, err error) {
	code := apiErrors.CodeFor(err)

	var syncErr *syncing.SyncError
	if errors.As(err, &syncErr) {
		code = syncErr.Code
	}

	if code == apiErrors.ErrCommunication {
		w.Header().Set("Retry-After", strconv.Itoa(apiErrors.RetryAfterSeconds))
	}

	writeJSON(w, apiErrors.StatusFor(code), domain.SyncResponse{
		Success:   false,
		Message:   publicMessage(code, err),
		Timestamp: time.Now().UTC(),
		Code:      code,
	})
}

func GetSyncStatus(sched scheduler.AccountSyncScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sched.GetStatus())
	}
}
