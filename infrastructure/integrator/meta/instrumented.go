package meta

import (
	"context"
	"errors"
	"time"

	metadomain "github.com/vfg2006/ad-control-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-control-api/internal/domain"
	"github.com/vfg2006/ad-control-api/internal/telemetry"
)

type instrumented struct {
	next AdPlatform
}

// Instrument registra a duração e o resultado de cada chamada no histograma da plataforma
func Instrument(next AdPlatform) AdPlatform {
	return &instrumented{next: next}
}

func (i *instrumented) observe(op string, started time.Time, err error) {
	outcome := telemetry.OutcomeSuccess
	switch {
	case errors.Is(err, domain.ErrTimeout):
		outcome = telemetry.OutcomeTimeout
	case err != nil:
		outcome = telemetry.OutcomeError
	}

	telemetry.ObserveAdPlatformCall(op, i.next.Mode(), outcome, started)
}

func (i *instrumented) ListAccounts(ctx context.Context, ownerID string) ([]metadomain.AccountSummary, error) {
	started := time.Now()
	accounts, err := i.next.ListAccounts(ctx, ownerID)
	i.observe("list_accounts", started, err)
	return accounts, err
}

func (i *instrumented) GetAccountDetails(ctx context.Context, accountID string) (*metadomain.AccountDetails, error) {
	started := time.Now()
	details, err := i.next.GetAccountDetails(ctx, accountID)
	i.observe("get_account_details", started, err)
	return details, err
}

func (i *instrumented) GetAccountInsights(ctx context.Context, accountID string, date time.Time) (*metadomain.AccountInsights, error) {
	started := time.Now()
	insights, err := i.next.GetAccountInsights(ctx, accountID, date)
	i.observe("get_account_insights", started, err)
	return insights, err
}

func (i *instrumented) ListCampaigns(ctx context.Context, accountID string) ([]domain.Campaign, error) {
	started := time.Now()
	campaigns, err := i.next.ListCampaigns(ctx, accountID)
	i.observe("list_campaigns", started, err)
	return campaigns, err
}

func (i *instrumented) SetCampaignStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error {
	started := time.Now()
	err := i.next.SetCampaignStatus(ctx, campaignID, status)
	i.observe("set_campaign_status", started, err)
	return err
}

func (i *instrumented) PauseAllCampaigns(ctx context.Context, accountID string) ([]string, error) {
	started := time.Now()
	paused, err := i.next.PauseAllCampaigns(ctx, accountID)
	i.observe("pause_all_campaigns", started, err)
	return paused, err
}

func (i *instrumented) Mode() string {
	return i.next.Mode()
}
