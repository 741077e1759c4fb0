package controlling

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-control-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-control-api/infrastructure/repository"
	"github.com/vfg2006/ad-control-api/internal/domain"
	"github.com/vfg2006/ad-control-api/internal/telemetry"
)

type SetCampaignStatusRequest struct {
	CampaignID string `json:"-"`
	Status     string `json:"status" validate:"required"`
	AccountID  string `json:"account_id,omitempty"`
}

type ControlService interface {
	SetCampaignStatus(ctx context.Context, actor string, req SetCampaignStatusRequest) (*domain.AccountAction, error)
	PauseAllCampaigns(ctx context.Context, actor string, accountID string) (*domain.AccountAction, error)
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

type Service struct {
	platform    meta.AdPlatform
	accountRepo repository.AccountRepository
	actionRepo  repository.AccountActionRepository
	now         func() time.Time
}

func NewService(
	platform meta.AdPlatform,
	accountRepo repository.AccountRepository,
	actionRepo repository.AccountActionRepository,
	opts ...Option,
) ControlService {
	s := &Service{
		platform:    platform,
		accountRepo: accountRepo,
		actionRepo:  actionRepo,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetCampaignStatus altera o status da campanha na plataforma e grava a auditoria.
// Entradas inválidas são rejeitadas antes de qualquer chamada remota.
func (s *Service) SetCampaignStatus(ctx context.Context, actor string, req SetCampaignStatusRequest) (*domain.AccountAction, error) {
	campaignID := strings.TrimSpace(req.CampaignID)
	if campaignID == "" {
		return nil, NewActionError(domain.NewValidationError("campaign_id", "campanha obrigatória"), req.AccountID, "")
	}

	status, err := domain.ParseCampaignStatus(req.Status)
	if err != nil {
		return nil, NewActionError(err, req.AccountID, "")
	}

	accountID, err := s.resolveOwnerAccount(ctx, req.AccountID)
	if err != nil {
		return nil, NewActionError(err, req.AccountID, "falha ao consultar a conta")
	}

	logger := logrus.WithFields(logrus.Fields{
		"campaign_id":  campaignID,
		"account_id":   accountID,
		"status":       status,
		"performed_by": actor,
	})

	if err := s.platform.SetCampaignStatus(ctx, campaignID, status); err != nil {
		logger.WithError(err).Error("Erro ao alterar status da campanha na plataforma")
		telemetry.RecordControlAction(status.ActionName(), telemetry.OutcomeError)
		return nil, NewActionError(err, accountID, "falha ao alterar status da campanha")
	}

	now := s.now().UTC()
	action := &domain.AccountAction{
		PerformedBy: actor,
		AdAccountID: accountID,
		TargetType:  domain.ActionTargetCampaign,
		TargetID:    campaignID,
		Action:      status.ActionName(),
		Payload: domain.SetCampaignStatusPayload{
			Status:    status,
			Timestamp: now,
		},
		CreatedAt: now,
	}

	if err := s.actionRepo.Create(ctx, action); err != nil {
		logger.WithError(err).Error("Erro ao gravar auditoria da ação")
		telemetry.RecordControlAction(action.Action, telemetry.OutcomeError)
		return nil, NewActionError(err, accountID, "status alterado, mas falhou ao gravar a auditoria")
	}

	telemetry.RecordControlAction(action.Action, telemetry.OutcomeSuccess)
	logger.Info("Status da campanha alterado")

	return action, nil
}

// PauseAllCampaigns pausa todas as campanhas ativas de uma conta conhecida
func (s *Service) PauseAllCampaigns(ctx context.Context, actor string, accountID string) (*domain.AccountAction, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, NewActionError(domain.NewValidationError("account_id", "conta obrigatória"), "", "")
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, NewActionError(err, accountID, "falha ao consultar a conta")
	}

	if account == nil {
		return nil, NewActionError(domain.NewNotFoundError("account", accountID), accountID, "")
	}

	logger := logrus.WithFields(logrus.Fields{
		"account_id":   accountID,
		"performed_by": actor,
	})

	pausedIDs, err := s.platform.PauseAllCampaigns(ctx, accountID)
	if err != nil {
		logger.WithError(err).Error("Erro ao pausar campanhas na plataforma")
		telemetry.RecordControlAction(domain.ActionPauseAllCampaigns, telemetry.OutcomeError)
		return nil, NewActionError(err, accountID, "falha ao pausar campanhas")
	}

	if pausedIDs == nil {
		pausedIDs = []string{}
	}

	now := s.now().UTC()
	action := &domain.AccountAction{
		PerformedBy: actor,
		AdAccountID: accountID,
		TargetType:  domain.ActionTargetAccount,
		TargetID:    accountID,
		Action:      domain.ActionPauseAllCampaigns,
		Payload: domain.PauseAllCampaignsPayload{
			Timestamp:         now,
			PausedCampaignIDs: pausedIDs,
			PausedCount:       len(pausedIDs),
		},
		CreatedAt: now,
	}

	if err := s.actionRepo.Create(ctx, action); err != nil {
		logger.WithError(err).Error("Erro ao gravar auditoria da ação")
		telemetry.RecordControlAction(action.Action, telemetry.OutcomeError)
		return nil, NewActionError(err, accountID, "campanhas pausadas, mas falhou ao gravar a auditoria")
	}

	telemetry.RecordControlAction(action.Action, telemetry.OutcomeSuccess)
	logger.WithField("paused_count", len(pausedIDs)).Info("Campanhas da conta pausadas")

	return action, nil
}

// resolveOwnerAccount usa a dica do cliente apenas se a conta existir no banco
func (s *Service) resolveOwnerAccount(ctx context.Context, hint string) (string, error) {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return domain.UnknownAccountID, nil
	}

	account, err := s.accountRepo.GetByID(ctx, hint)
	if err != nil {
		return "", err
	}

	if account == nil {
		logrus.WithField("account_id", hint).Warn("Conta informada não existe, ação registrada como unknown")
		return domain.UnknownAccountID, nil
	}

	return account.ID, nil
}
