package domain

import "time"

// SyncFailure registra a falha isolada de uma conta durante a sincronização
type SyncFailure struct {
	AccountID string `json:"account_id"`
	Error     string `json:"error"`
}

type SyncResult struct {
	StartedAt      time.Time     `json:"started_at"`
	FinishedAt     time.Time     `json:"finished_at"`
	Mode           string        `json:"mode"`
	VendorID       string        `json:"vendor_id"`
	AccountsSeen   int           `json:"accounts_seen"`
	AccountsSynced int           `json:"accounts_synced"`
	AccountsFailed int           `json:"accounts_failed"`
	Failures       []SyncFailure `json:"failures"`
}

type SyncResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
	Code      string      `json:"code,omitempty"`
	Result    *SyncResult `json:"result,omitempty"`
}
