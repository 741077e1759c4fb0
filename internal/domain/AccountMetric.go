package domain

import "time"

// AccountMetric é o snapshot diário de gasto/desempenho de uma conta.
// Existe no máximo uma linha por (conta, data).
type AccountMetric struct {
	ID            int64           `json:"id"`
	AdAccountID   string          `json:"ad_account_id"`
	Date          time.Time       `json:"date"`
	Spend         float64         `json:"spend"`
	SpendCap      float64         `json:"spend_cap"`
	Clicks        int64           `json:"clicks"`
	Impressions   int64           `json:"impressions"`
	CPC           float64         `json:"cpc"`
	Balance       float64         `json:"balance"`
	StatusAtFetch AdAccountStatus `json:"status_at_fetch"`
	FetchedAt     time.Time       `json:"fetched_at"`
}

// MetricDate normaliza um instante para a meia-noite UTC do mesmo dia.
// Todas as gravações de métricas usam essa chave para que o upsert seja idempotente.
func MetricDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
