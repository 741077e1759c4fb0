package domain

import (
	"time"
)

type AdAccountStatus string

const (
	AdAccountStatusActive             AdAccountStatus = "ACTIVE"
	AdAccountStatusDisabled           AdAccountStatus = "DISABLED"
	AdAccountStatusUnsettled          AdAccountStatus = "UNSETTLED"
	AdAccountStatusPendingRiskReview  AdAccountStatus = "PENDING_RISK_REVIEW"
	AdAccountStatusPendingSettlement  AdAccountStatus = "PENDING_SETTLEMENT"
	AdAccountStatusInGracePeriod      AdAccountStatus = "IN_GRACE_PERIOD"
	AdAccountStatusPendingClosure     AdAccountStatus = "PENDING_CLOSURE"
	AdAccountStatusClosed             AdAccountStatus = "CLOSED"
	AdAccountStatusAdvertiserDisabled AdAccountStatus = "ADVERTISER_DISABLED"
	AdAccountStatusUnknown            AdAccountStatus = "UNKNOWN"
)

// Mapeamento do account_status numérico da Graph API
var adAccountStatusByCode = map[int]AdAccountStatus{
	1:   AdAccountStatusActive,
	2:   AdAccountStatusDisabled,
	3:   AdAccountStatusUnsettled,
	7:   AdAccountStatusPendingRiskReview,
	8:   AdAccountStatusPendingSettlement,
	9:   AdAccountStatusInGracePeriod,
	100: AdAccountStatusPendingClosure,
	101: AdAccountStatusClosed,
	201: AdAccountStatusAdvertiserDisabled,
}

// AdAccountStatusFromCode converte o código bruto da plataforma no status enumerado.
// Códigos fora da tabela viram UNKNOWN.
func AdAccountStatusFromCode(code int) AdAccountStatus {
	if status, ok := adAccountStatusByCode[code]; ok {
		return status
	}

	return AdAccountStatusUnknown
}

// UnknownAccountID é usado nas ações quando a conta dona do alvo não pode ser determinada
const UnknownAccountID = "unknown"

type AdAccount struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	VendorID          string          `json:"vendor_id"`
	VendorName        string          `json:"vendor"`
	BusinessManagerID string          `json:"business_manager_id"`
	Status            AdAccountStatus `json:"status"`
	Currency          string          `json:"currency"`
	Timezone          string          `json:"timezone"`
	LastSeenAt        time.Time       `json:"last_seen_at"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type AdAccountResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Vendor            string          `json:"vendor"`
	BusinessManagerID string          `json:"business_manager_id"`
	Status            AdAccountStatus `json:"status"`
	Currency          string          `json:"currency"`
	Timezone          string          `json:"timezone"`
	LastSeenAt        time.Time       `json:"last_seen_at"`
	CreatedAt         time.Time       `json:"created_at"`
	LatestMetric      *AccountMetric  `json:"latest_metric"`
}

type AdAccountDetailsResponse struct {
	Account   *AdAccountResponse `json:"account"`
	Campaigns []Campaign         `json:"campaigns"`
	Metrics   []*AccountMetric   `json:"metrics"`
}

// DashboardSummary agrega a última métrica de cada conta
type DashboardSummary struct {
	TotalAccounts  int     `json:"total_accounts"`
	ActiveAccounts int     `json:"active_accounts"`
	TotalSpend     float64 `json:"total_spend"`
	TotalClicks    int64   `json:"total_clicks"`
}
