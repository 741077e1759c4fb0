// Package simulation gera dados de plataforma plausíveis sem credenciais.
//
// O conjunto de contas e campanhas é criado na primeira chamada e mantido em memória,
// então sincronizações repetidas atualizam as mesmas contas e as alterações de status
// feitas pelas ações de controle aparecem nas leituras seguintes.
package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	metadomain "github.com/vfg2006/ad-control-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-control-api/internal/config"
	"github.com/vfg2006/ad-control-api/internal/domain"
	"github.com/vfg2006/ad-control-api/pkg/utils"
)

const (
	digits       = "0123456789"
	BusinessName = "Test Business"
)

var nameSuffixes = []string{"Pro", "Max", "Plus", "Ultra", "Elite", "Premium"}

type Client struct {
	mu        sync.Mutex
	rng       *rand.Rand
	latency   time.Duration
	accounts  []metadomain.AccountSummary
	campaigns map[string][]*domain.Campaign
}

func New(rng *rand.Rand, latency time.Duration) *Client {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Client{
		rng:       rng,
		latency:   latency,
		campaigns: make(map[string][]*domain.Campaign),
	}
}

func (c *Client) Mode() string {
	return config.ModeSimulation
}

// wait simula a latência da rede respeitando o cancelamento do contexto
func (c *Client) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		if ctx.Err() != nil {
			return timeoutError(ctx)
		}
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return timeoutError(ctx)
	case <-timer.C:
		return nil
	}
}

func timeoutError(ctx context.Context) error {
	return &domain.RemoteError{Op: "simulation", Retryable: true, Err: fmt.Errorf("%w: %v", domain.ErrTimeout, ctx.Err())}
}

func (c *Client) intn(min, max int) int {
	return min + c.rng.Intn(max-min+1)
}

func (c *Client) float(min, max float64) float64 {
	return min + c.rng.Float64()*(max-min)
}

func (c *Client) name(prefix string) string {
	return fmt.Sprintf("%s %s", prefix, nameSuffixes[c.rng.Intn(len(nameSuffixes))])
}

// ListAccounts devolve de 3 a 8 contas. O status bruto é sorteado de 1 a 9 a cada chamada,
// o que inclui códigos fora da tabela conhecida.
func (c *Client) ListAccounts(ctx context.Context, businessID string) ([]metadomain.AccountSummary, error) {
	if err := c.wait(ctx, c.latency); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accounts == nil {
		total := c.intn(3, 8)
		for i := 0; i < total; i++ {
			id, err := gonanoid.Generate(digits, 15)
			if err != nil {
				return nil, err
			}

			c.accounts = append(c.accounts, metadomain.AccountSummary{
				ID:           "act_" + id,
				Name:         c.name("Account"),
				Currency:     "USD",
				TimezoneID:   1,
				BusinessName: BusinessName,
			})
		}
	}

	accounts := make([]metadomain.AccountSummary, len(c.accounts))
	for i, acc := range c.accounts {
		acc.StatusCode = c.intn(1, 9)
		accounts[i] = acc
	}

	return accounts, nil
}

func (c *Client) GetAccountDetails(ctx context.Context, accountID string) (*metadomain.AccountDetails, error) {
	if err := c.wait(ctx, c.latency); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return &metadomain.AccountDetails{
		StatusCode: c.intn(1, 9),
		SpendCap:   utils.RoundWithTwoDecimalPlace(c.float(100, 10000)),
		Currency:   "USD",
		Balance:    utils.RoundWithTwoDecimalPlace(c.float(-100, 5000)),
	}, nil
}

// GetAccountInsights calcula o CPC a partir do gasto e dos cliques gerados
func (c *Client) GetAccountInsights(ctx context.Context, accountID string, date time.Time) (*metadomain.AccountInsights, error) {
	if err := c.wait(ctx, c.latency); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	clicks := c.intn(0, 1000)
	spend := utils.RoundWithTwoDecimalPlace(c.float(0, 500))
	impressions := c.intn(clicks*10, clicks*100)

	cpc := 0.0
	if clicks > 0 {
		cpc = spend / float64(clicks)
	}

	return &metadomain.AccountInsights{
		Spend:        spend,
		Clicks:       int64(clicks),
		Impressions:  int64(impressions),
		CostPerClick: cpc,
	}, nil
}

func (c *Client) ListCampaigns(ctx context.Context, accountID string) ([]domain.Campaign, error) {
	if err := c.wait(ctx, c.latency); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	campaigns, err := c.campaignsFor(accountID)
	if err != nil {
		return nil, err
	}

	return snapshot(campaigns), nil
}

func (c *Client) SetCampaignStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error {
	if _, err := domain.ParseCampaignStatus(string(status)); err != nil {
		return err
	}

	if err := c.wait(ctx, c.latency); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, campaigns := range c.campaigns {
		for _, campaign := range campaigns {
			if campaign.ID == campaignID {
				campaign.Status = string(status)
				campaign.EffectiveStatus = string(status)
				return nil
			}
		}
	}

	return domain.NewNotFoundError("campaign", campaignID)
}

func (c *Client) PauseAllCampaigns(ctx context.Context, accountID string) ([]string, error) {
	if err := c.wait(ctx, 2*c.latency); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	campaigns, err := c.campaignsFor(accountID)
	if err != nil {
		return nil, err
	}

	paused := make([]string, 0)
	for _, campaign := range campaigns {
		if campaign.Status == string(domain.CampaignStatusActive) {
			campaign.Status = string(domain.CampaignStatusPaused)
			campaign.EffectiveStatus = string(domain.CampaignStatusPaused)
			paused = append(paused, campaign.ID)
		}
	}

	return paused, nil
}

// campaignsFor cria as campanhas da conta na primeira consulta. Chamar com c.mu travado.
func (c *Client) campaignsFor(accountID string) ([]*domain.Campaign, error) {
	if campaigns, ok := c.campaigns[accountID]; ok {
		return campaigns, nil
	}

	total := c.intn(2, 6)
	campaigns := make([]*domain.Campaign, 0, total)
	for i := 0; i < total; i++ {
		id, err := gonanoid.Generate(digits, 15)
		if err != nil {
			return nil, err
		}

		status := string(domain.CampaignStatusPaused)
		if c.rng.Float64() > 0.3 {
			status = string(domain.CampaignStatusActive)
		}

		campaigns = append(campaigns, &domain.Campaign{
			ID:              "camp_" + id,
			Name:            c.name("Campaign"),
			Status:          status,
			EffectiveStatus: status,
		})
	}

	c.campaigns[accountID] = campaigns
	return campaigns, nil
}

func snapshot(campaigns []*domain.Campaign) []domain.Campaign {
	out := make([]domain.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		out = append(out, *campaign)
	}
	return out
}
