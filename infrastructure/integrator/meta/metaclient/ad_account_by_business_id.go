package metaclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-control-api/infrastructure/integrator/meta/domain"
)

const accountFields = "id,name,account_status,currency,timezone_id,timezone_name,business"

// ListAccounts junta as contas próprias e as de clientes do business manager, sem repetição
func (c *MetaClient) ListAccounts(ctx context.Context, businessID string) ([]metadomain.AccountSummary, error) {
	if businessID == "" {
		return nil, errors.New("business id é obrigatório")
	}

	params := url.Values{}
	params.Add("fields", accountFields)
	params.Add("limit", pageSize)

	seen := make(map[string]struct{})
	results := make([]metadomain.AccountSummary, 0)

	for _, edge := range []string{"owned_ad_accounts", "client_ad_accounts"} {
		accounts, err := listAll[metadomain.AdAccount](ctx, c, "list_accounts", fmt.Sprintf("%s/%s", businessID, edge), params)
		if err != nil {
			return nil, err
		}

		for _, acc := range accounts {
			if _, ok := seen[acc.ID]; ok {
				continue
			}
			seen[acc.ID] = struct{}{}
			results = append(results, acc.ToSummary())
		}
	}

	logrus.WithFields(logrus.Fields{
		"business_id": businessID,
		"accounts":    len(results),
	}).Debug("Contas obtidas da Graph API")

	return results, nil
}
