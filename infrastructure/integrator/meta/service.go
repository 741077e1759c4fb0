package meta

//go:generate mockgen -source=service.go -destination=mocks/ad_platform_mock.go -package=mocks

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-control-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-control-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-control-api/infrastructure/integrator/meta/simulation"
	"github.com/vfg2006/ad-control-api/internal/config"
	"github.com/vfg2006/ad-control-api/internal/domain"
)

// AdPlatform é o contrato comum ao cliente real da Graph API e ao simulado
type AdPlatform interface {
	ListAccounts(ctx context.Context, ownerID string) ([]metadomain.AccountSummary, error)
	GetAccountDetails(ctx context.Context, accountID string) (*metadomain.AccountDetails, error)
	GetAccountInsights(ctx context.Context, accountID string, date time.Time) (*metadomain.AccountInsights, error)
	ListCampaigns(ctx context.Context, accountID string) ([]domain.Campaign, error)
	SetCampaignStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error
	PauseAllCampaigns(ctx context.Context, accountID string) ([]string, error)
	Mode() string
}

// New escolhe a variante uma única vez, na inicialização.
// Em modo live sem credenciais devolve um domain.ConfigError.
func New(cfg *config.Config) (AdPlatform, error) {
	if cfg.Meta.IsSimulation() {
		logrus.WithField("latency", cfg.Meta.SimulationLatency.String()).Info("Plataforma de anúncios em modo simulação")
		return Instrument(simulation.New(rand.New(rand.NewSource(time.Now().UnixNano())), cfg.Meta.SimulationLatency)), nil
	}

	if cfg.Meta.Mode != config.ModeLive {
		return nil, domain.NewConfigError("META_MODE", "modo desconhecido: "+cfg.Meta.Mode)
	}

	if cfg.Meta.AccessToken == "" {
		return nil, domain.NewConfigError("META_ACCESS_TOKEN", "access token obrigatório em modo live")
	}

	if cfg.Meta.BusinessID == "" {
		return nil, domain.NewConfigError("META_BUSINESS_ID", "business id obrigatório em modo live")
	}

	logrus.WithField("url", cfg.Meta.URL).Info("Plataforma de anúncios em modo live")

	return Instrument(metaclient.NewClient(cfg.Meta, &http.Client{})), nil
}

type unavailable struct {
	err error
}

// Unavailable devolve uma plataforma que falha toda operação com o erro de configuração,
// mantendo login e leituras locais funcionando
func Unavailable(err error) AdPlatform {
	return &unavailable{err: err}
}

func (u *unavailable) ListAccounts(context.Context, string) ([]metadomain.AccountSummary, error) {
	return nil, u.err
}

func (u *unavailable) GetAccountDetails(context.Context, string) (*metadomain.AccountDetails, error) {
	return nil, u.err
}

func (u *unavailable) GetAccountInsights(context.Context, string, time.Time) (*metadomain.AccountInsights, error) {
	return nil, u.err
}

func (u *unavailable) ListCampaigns(context.Context, string) ([]domain.Campaign, error) {
	return nil, u.err
}

func (u *unavailable) SetCampaignStatus(context.Context, string, domain.CampaignStatus) error {
	return u.err
}

func (u *unavailable) PauseAllCampaigns(context.Context, string) ([]string, error) {
	return nil, u.err
}

func (u *unavailable) Mode() string {
	return config.ModeLive
}
