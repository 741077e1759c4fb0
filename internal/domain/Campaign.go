package domain

import "strings"

type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "ACTIVE"
	CampaignStatusPaused CampaignStatus = "PAUSED"
)

// ParseCampaignStatus aceita apenas ACTIVE ou PAUSED
func ParseCampaignStatus(raw string) (CampaignStatus, error) {
	switch CampaignStatus(raw) {
	case CampaignStatusActive, CampaignStatusPaused:
		return CampaignStatus(raw), nil
	}

	return "", NewValidationError("status", "status inválido, use ACTIVE ou PAUSED")
}

// ActionName devolve o nome da ação registrada na auditoria
func (s CampaignStatus) ActionName() string {
	return "set_status_" + strings.ToLower(string(s))
}

// Campaign é a visão da campanha na plataforma. EffectiveStatus é repassado sem interpretação.
type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
}
