package metadomain

import (
	"strconv"
	"strings"
)

// AdAccount é a conta como devolvida pelos edges *_ad_accounts da Graph API
type AdAccount struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	AccountStatus int       `json:"account_status"`
	Currency      string    `json:"currency"`
	TimezoneID    int       `json:"timezone_id"`
	TimezoneName  string    `json:"timezone_name"`
	Business      *Business `json:"business,omitempty"`
}

type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AdAccountDetails struct {
	AccountStatus int         `json:"account_status"`
	SpendCap      FlexFloat64 `json:"spend_cap"`
	Currency      string      `json:"currency"`
	Balance       FlexFloat64 `json:"balance"`
}

// AdAccountInsight traz os valores numéricos como texto, como a Graph API envia
type AdAccountInsight struct {
	Spend       string `json:"spend"`
	Clicks      string `json:"clicks"`
	Impressions string `json:"impressions"`
	CPC         string `json:"cpc"`
	DateStart   string `json:"date_start"`
	DateStop    string `json:"date_stop"`
}

// FlexFloat64 aceita tanto número quanto string numérica no JSON
type FlexFloat64 float64

func (f *FlexFloat64) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}

	*f = FlexFloat64(v)
	return nil
}

// AccountSummary é a visão neutra de uma conta listada, comum ao cliente real e ao simulado
type AccountSummary struct {
	ID           string
	Name         string
	StatusCode   int
	Currency     string
	TimezoneID   int
	TimezoneName string
	BusinessName string
}

type AccountDetails struct {
	StatusCode int
	SpendCap   float64
	Currency   string
	Balance    float64
}

type AccountInsights struct {
	Spend        float64
	Clicks       int64
	Impressions  int64
	CostPerClick float64
}

func (a AdAccount) ToSummary() AccountSummary {
	summary := AccountSummary{
		ID:           a.ID,
		Name:         a.Name,
		StatusCode:   a.AccountStatus,
		Currency:     a.Currency,
		TimezoneID:   a.TimezoneID,
		TimezoneName: a.TimezoneName,
	}

	if a.Business != nil {
		summary.BusinessName = a.Business.Name
	}

	return summary
}

func (d AdAccountDetails) ToDetails() *AccountDetails {
	return &AccountDetails{
		StatusCode: d.AccountStatus,
		SpendCap:   float64(d.SpendCap),
		Currency:   d.Currency,
		Balance:    float64(d.Balance),
	}
}

// ToInsights converte os textos da Graph API. Campos ausentes ou inválidos viram zero.
func (i AdAccountInsight) ToInsights() *AccountInsights {
	spend, _ := strconv.ParseFloat(i.Spend, 64)
	clicks, _ := strconv.ParseInt(i.Clicks, 10, 64)
	impressions, _ := strconv.ParseInt(i.Impressions, 10, 64)
	cpc, _ := strconv.ParseFloat(i.CPC, 64)

	return &AccountInsights{
		Spend:        spend,
		Clicks:       clicks,
		Impressions:  impressions,
		CostPerClick: cpc,
	}
}
