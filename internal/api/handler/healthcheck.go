package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/ad-control-api/pkg/log"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status   string    `json:"status"`
	Mode     string    `json:"mode"`
	Database string    `json:"database"`
	Time     time.Time `json:"time"`
}

// HealthcheckHandler responde 503 quando o banco não responde ao ping
func HealthcheckHandler(checker HealthChecker, mode string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{
			Status:   "ok",
			Mode:     mode,
			Database: "ok",
			Time:     time.Now().UTC(),
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.Ping(ctx); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao responder healthcheck")
			resp.Status = "degraded"
			resp.Database = "unreachable"
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}
