// Package telemetry registra as métricas Prometheus da aplicação.
//
// As métricas ficam no registry padrão e são expostas em GET /metrics.
// Os labels de HTTP usam o template da rota (/v1/accounts/:id), nunca a URL crua.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de requisições HTTP por método, rota e status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latência das requisições HTTP por método e rota.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	// AdPlatformRequestDuration mede cada chamada à plataforma de anúncios
	AdPlatformRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adplatform_request_duration_seconds",
			Help:    "Latência das chamadas à plataforma de anúncios por operação, modo e resultado.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation", "mode", "outcome"},
	)

	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_runs_total",
			Help: "Execuções da sincronização por resultado.",
		},
		[]string{"outcome"},
	)

	SyncAccountsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_accounts_total",
			Help: "Contas processadas pela sincronização por resultado.",
		},
		[]string{"outcome"},
	)

	SyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sync_duration_seconds",
			Help:    "Duração de cada execução completa da sincronização.",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)

	ControlActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "control_actions_total",
			Help: "Ações de controle por nome da ação e resultado.",
		},
		[]string{"action", "outcome"},
	)
)

// ObserveAdPlatformCall registra a duração de uma chamada à plataforma
func ObserveAdPlatformCall(operation, mode, outcome string, started time.Time) {
	AdPlatformRequestDuration.WithLabelValues(operation, mode, outcome).Observe(time.Since(started).Seconds())
}

// RecordSync registra o resultado de uma execução da sincronização
func RecordSync(outcome string, synced, failed int, duration time.Duration) {
	SyncRunsTotal.WithLabelValues(outcome).Inc()
	SyncAccountsTotal.WithLabelValues(OutcomeSuccess).Add(float64(synced))
	SyncAccountsTotal.WithLabelValues(OutcomeError).Add(float64(failed))
	SyncDuration.Observe(duration.Seconds())
}

func RecordControlAction(action, outcome string) {
	ControlActionsTotal.WithLabelValues(action, outcome).Inc()
}
