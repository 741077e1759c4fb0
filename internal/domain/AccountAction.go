package domain

import (
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ActionTargetType string

const (
	ActionTargetAccount  ActionTargetType = "account"
	ActionTargetCampaign ActionTargetType = "campaign"
)

const ActionPauseAllCampaigns = "pause_all_campaigns"

const setStatusActionPrefix = "set_status_"

// AccountAction é o registro de auditoria de uma ação de controle.
// É gravado uma única vez e nunca alterado.
type AccountAction struct {
	ID          string           `json:"id"`
	PerformedBy string           `json:"performed_by"`
	AdAccountID string           `json:"ad_account_id"`
	TargetType  ActionTargetType `json:"target_type"`
	TargetID    string           `json:"target_id"`
	Action      string           `json:"action"`
	Payload     ActionPayload    `json:"payload"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ActionPayload é a união fechada dos payloads conhecidos.
// OtherPayload guarda o texto bruto de ações que esta versão não conhece.
type ActionPayload interface {
	actionPayload()
}

type SetCampaignStatusPayload struct {
	Status    CampaignStatus `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
}

type PauseAllCampaignsPayload struct {
	Timestamp         time.Time `json:"timestamp"`
	PausedCampaignIDs []string  `json:"paused_campaign_ids"`
	PausedCount       int       `json:"paused_count"`
}

type OtherPayload struct {
	Raw string
}

func (SetCampaignStatusPayload) actionPayload() {}
func (PauseAllCampaignsPayload) actionPayload() {}
func (OtherPayload) actionPayload()             {}

// MarshalJSON devolve o texto original quando ele já é JSON válido
func (p OtherPayload) MarshalJSON() ([]byte, error) {
	if p.Raw != "" && json.Valid([]byte(p.Raw)) {
		return []byte(p.Raw), nil
	}
	return json.Marshal(p.Raw)
}

// EncodeActionPayload serializa o payload para a coluna JSONB
func EncodeActionPayload(payload ActionPayload) ([]byte, error) {
	if payload == nil {
		return []byte("{}"), nil
	}

	if p, ok := payload.(PauseAllCampaignsPayload); ok && p.PausedCampaignIDs == nil {
		p.PausedCampaignIDs = []string{}
		payload = p
	}

	return json.Marshal(payload)
}

// DecodeActionPayload reconstrói o payload tipado a partir do nome da ação
func DecodeActionPayload(action string, raw []byte) ActionPayload {
	switch {
	case action == ActionPauseAllCampaigns:
		var p PauseAllCampaignsPayload
		if err := json.Unmarshal(raw, &p); err == nil {
			return p
		}
	case strings.HasPrefix(action, setStatusActionPrefix):
		var p SetCampaignStatusPayload
		if err := json.Unmarshal(raw, &p); err == nil {
			return p
		}
	}

	return OtherPayload{Raw: string(raw)}
}

// ActionFilter filtra a listagem da trilha de auditoria
type ActionFilter struct {
	AdAccountID string
	Limit       uint64
}
