package metaclient

import (
	"context"
	"net/url"
	"time"

	metadomain "github.com/vfg2006/ad-control-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetAccountDetails(ctx context.Context, accountID string) (*metadomain.AccountDetails, error) {
	params := url.Values{}
	params.Add("fields", "account_status,spend_cap,currency,balance")

	var details metadomain.AdAccountDetails
	if err := c.get(ctx, "get_account_details", accountPath(accountID), params, &details); err != nil {
		return nil, asNotFound(err, "ad account", accountID)
	}

	return details.ToDetails(), nil
}

// GetAccountInsights busca os números de um único dia. Sem dados no dia, devolve zeros.
func (c *MetaClient) GetAccountInsights(ctx context.Context, accountID string, date time.Time) (*metadomain.AccountInsights, error) {
	day := date.Format(time.DateOnly)

	timeRange, err := json.Marshal(map[string]string{"since": day, "until": day})
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("fields", "spend,clicks,impressions,cpc")
	params.Add("time_range", string(timeRange))
	params.Add("level", "account")

	var response metadomain.ListResponse[metadomain.AdAccountInsight]
	if err := c.get(ctx, "get_account_insights", accountPath(accountID)+"/insights", params, &response); err != nil {
		return nil, err
	}

	if len(response.Data) == 0 {
		return &metadomain.AccountInsights{}, nil
	}

	return response.Data[0].ToInsights(), nil
}
