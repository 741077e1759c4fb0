package account

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-control-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-control-api/infrastructure/repository"
	"github.com/vfg2006/ad-control-api/internal/domain"
	"github.com/vfg2006/ad-control-api/pkg/apiErrors"
	"github.com/vfg2006/ad-control-api/pkg/utils"
)

const (
	UnknownVendor = "Unknown"

	DefaultActionsLimit uint64 = 50
	MaxActionsLimit     uint64 = 500
	recentMetricsLimit  uint64 = 10
)

type AccountService interface {
	ListAccounts(ctx context.Context) ([]*domain.AdAccountResponse, error)
	GetAccountDetails(ctx context.Context, accountID string) (*domain.AdAccountDetailsResponse, error)
	ListActions(ctx context.Context, filter domain.ActionFilter) ([]*domain.AccountAction, error)
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
}

type Service struct {
	platform    meta.AdPlatform
	accountRepo repository.AccountRepository
	metricRepo  repository.AccountMetricRepository
	actionRepo  repository.AccountActionRepository
}

func NewService(
	platform meta.AdPlatform,
	accountRepo repository.AccountRepository,
	metricRepo repository.AccountMetricRepository,
	actionRepo repository.AccountActionRepository,
) AccountService {
	return &Service{
		platform:    platform,
		accountRepo: accountRepo,
		metricRepo:  metricRepo,
		actionRepo:  actionRepo,
	}
}

// ListAccounts devolve as contas mais recentes primeiro, com a última métrica de cada uma
func (s *Service) ListAccounts(ctx context.Context) ([]*domain.AdAccountResponse, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar contas no banco")
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	latest, err := s.metricRepo.LatestByAccount(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar últimas métricas")
		return nil, NewAccountError(ErrFetchMetrics, apiErrors.ErrDatabaseOperation, "Falha ao buscar métricas no banco de dados")
	}

	response := make([]*domain.AdAccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		item := toResponse(acc)
		item.LatestMetric = latest[acc.ID]
		response = append(response, item)
	}

	return response, nil
}

// GetAccountDetails junta a conta gravada, as campanhas atuais da plataforma e as últimas métricas
func (s *Service) GetAccountDetails(ctx context.Context, accountID string) (*domain.AdAccountDetailsResponse, error) {
	if accountID == "" {
		return nil, NewAccountErrorWithID(domain.NewValidationError("id", "conta obrigatória"), accountID, "")
	}

	acc, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		logrus.WithField("account_id", accountID).WithError(err).Error("Erro ao buscar conta")
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao buscar conta no banco de dados")
	}

	if acc == nil {
		return nil, NewAccountErrorWithID(domain.NewNotFoundError("account", accountID), accountID, "")
	}

	campaigns, err := s.platform.ListCampaigns(ctx, accountID)
	if err != nil {
		logrus.WithField("account_id", accountID).WithError(err).Error("Erro ao listar campanhas na plataforma")
		return nil, NewAccountErrorWithID(err, accountID, "Falha ao listar campanhas")
	}

	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}

	metrics, err := s.metricRepo.ListByAccount(ctx, accountID, recentMetricsLimit)
	if err != nil {
		logrus.WithField("account_id", accountID).WithError(err).Error("Erro ao listar métricas da conta")
		return nil, NewAccountError(ErrFetchMetrics, apiErrors.ErrDatabaseOperation, "Falha ao buscar métricas no banco de dados")
	}

	item := toResponse(acc)
	if len(metrics) > 0 {
		item.LatestMetric = metrics[0]
	}

	return &domain.AdAccountDetailsResponse{
		Account:   item,
		Campaigns: campaigns,
		Metrics:   metrics,
	}, nil
}

// ListActions devolve a trilha de auditoria, opcionalmente filtrada por conta
func (s *Service) ListActions(ctx context.Context, filter domain.ActionFilter) ([]*domain.AccountAction, error) {
	filter.Limit = ClampActionsLimit(filter.Limit)

	actions, err := s.actionRepo.List(ctx, filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar ações")
		return nil, NewAccountError(ErrFetchActions, apiErrors.ErrDatabaseOperation, "Falha ao listar ações no banco de dados")
	}

	if actions == nil {
		actions = []*domain.AccountAction{}
	}

	return actions, nil
}

// Summary soma a última métrica de cada conta
func (s *Service) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar contas no banco")
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	latest, err := s.metricRepo.LatestByAccount(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar últimas métricas")
		return nil, NewAccountError(ErrFetchMetrics, apiErrors.ErrDatabaseOperation, "Falha ao buscar métricas no banco de dados")
	}

	summary := &domain.DashboardSummary{TotalAccounts: len(accounts)}

	var spend float64
	for _, acc := range accounts {
		if acc.Status == domain.AdAccountStatusActive {
			summary.ActiveAccounts++
		}

		if m, ok := latest[acc.ID]; ok {
			spend += m.Spend
			summary.TotalClicks += m.Clicks
		}
	}

	summary.TotalSpend = utils.RoundWithTwoDecimalPlace(spend)

	return summary, nil
}

// ClampActionsLimit aplica o padrão de 50 e o teto de 500
func ClampActionsLimit(limit uint64) uint64 {
	switch {
	case limit == 0:
		return DefaultActionsLimit
	case limit > MaxActionsLimit:
		return MaxActionsLimit
	default:
		return limit
	}
}

func toResponse(acc *domain.AdAccount) *domain.AdAccountResponse {
	vendor := acc.VendorName
	if vendor == "" {
		vendor = UnknownVendor
	}

	return &domain.AdAccountResponse{
		ID:                acc.ID,
		Name:              acc.Name,
		Vendor:            vendor,
		BusinessManagerID: acc.BusinessManagerID,
		Status:            acc.Status,
		Currency:          acc.Currency,
		Timezone:          acc.Timezone,
		LastSeenAt:        acc.LastSeenAt,
		CreatedAt:         acc.CreatedAt,
	}
}
