package metaclient

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-control-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-control-api/internal/domain"
)

func (c *MetaClient) ListCampaigns(ctx context.Context, accountID string) ([]domain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,effective_status")
	params.Add("limit", pageSize)

	campaigns, err := listAll[metadomain.Campaign](ctx, c, "list_campaigns", accountPath(accountID)+"/campaigns", params)
	if err != nil {
		return nil, asNotFound(err, "ad account", accountID)
	}

	results := make([]domain.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		results = append(results, campaign.ToDomain())
	}

	return results, nil
}

func (c *MetaClient) SetCampaignStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error {
	form := url.Values{}
	form.Add("status", string(status))

	var response metadomain.SuccessResponse
	if err := c.post(ctx, "set_campaign_status", campaignID, form, &response); err != nil {
		return asNotFound(err, "campaign", campaignID)
	}

	if !response.Success {
		return &domain.RemoteError{Op: "set_campaign_status", Err: errors.Errorf("Graph API não confirmou a alteração da campanha %s", campaignID)}
	}

	return nil
}

// PauseAllCampaigns pausa em um único batch todas as campanhas com status ACTIVE.
// Sem campanhas ativas nenhuma requisição de escrita é feita.
func (c *MetaClient) PauseAllCampaigns(ctx context.Context, accountID string) ([]string, error) {
	campaigns, err := c.ListCampaigns(ctx, accountID)
	if err != nil {
		return nil, err
	}

	activeIDs := make([]string, 0)
	for _, campaign := range campaigns {
		if campaign.Status == string(domain.CampaignStatusActive) {
			activeIDs = append(activeIDs, campaign.ID)
		}
	}

	if len(activeIDs) == 0 {
		logrus.WithField("account_id", accountID).Info("Nenhuma campanha ativa para pausar")
		return activeIDs, nil
	}

	batch := make([]metadomain.BatchRequest, 0, len(activeIDs))
	for _, id := range activeIDs {
		batch = append(batch, metadomain.BatchRequest{
			Method:      "POST",
			RelativeURL: id,
			Body:        "status=" + string(domain.CampaignStatusPaused),
		})
	}

	encoded, err := json.Marshal(batch)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Add("batch", string(encoded))
	form.Add("include_headers", "false")

	var response []*metadomain.BatchResponseItem
	if err := c.post(ctx, "pause_all_campaigns", "", form, &response); err != nil {
		return nil, err
	}

	batchErr := &metadomain.BatchError{}
	for i, id := range activeIDs {
		if i >= len(response) || response[i] == nil || response[i].Code != 200 {
			batchErr.FailedIDs = append(batchErr.FailedIDs, id)
			continue
		}
		batchErr.SucceededIDs = append(batchErr.SucceededIDs, id)
	}

	if len(batchErr.FailedIDs) > 0 {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"failed":     batchErr.FailedIDs,
		}).Error("Falha ao pausar campanhas no batch")
		return nil, &domain.RemoteError{Op: "pause_all_campaigns", Err: batchErr}
	}

	return activeIDs, nil
}
