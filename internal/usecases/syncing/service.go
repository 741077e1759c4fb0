package syncing

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-control-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/ad-control-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-control-api/infrastructure/repository"
	"github.com/vfg2006/ad-control-api/internal/config"
	"github.com/vfg2006/ad-control-api/internal/domain"
	"github.com/vfg2006/ad-control-api/internal/telemetry"
)

// Vendor fixo usado em modo simulação
const (
	SampleVendorName        = "Sample Vendor"
	SampleVendorContact     = "@samplevendor"
	SampleBusinessManagerID = "123456789"
	UnknownVendorName       = "Unknown Vendor"
	defaultTimezone         = "UTC"
)

type SyncService interface {
	Sync(ctx context.Context) (*domain.SyncResult, error)
}

type Option func(*Service)

// WithClock substitui o relógio usado para last_seen_at, fetched_at e a data da métrica
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

type Service struct {
	platform      meta.AdPlatform
	vendorRepo    repository.VendorRepository
	accountRepo   repository.AccountRepository
	metricRepo    repository.AccountMetricRepository
	businessID    string
	maxConcurrent int
	running       atomic.Bool
	now           func() time.Time
}

func NewService(
	platform meta.AdPlatform,
	vendorRepo repository.VendorRepository,
	accountRepo repository.AccountRepository,
	metricRepo repository.AccountMetricRepository,
	cfg *config.Config,
	opts ...Option,
) SyncService {
	s := &Service{
		platform:      platform,
		vendorRepo:    vendorRepo,
		accountRepo:   accountRepo,
		metricRepo:    metricRepo,
		businessID:    cfg.Meta.BusinessID,
		maxConcurrent: cfg.Sync.MaxConcurrentJobs,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.maxConcurrent < 1 {
		s.maxConcurrent = 1
	}

	return s
}

type ownerScope struct {
	businessManagerID string
	vendorName        string
	contactTelegram   *string
}

// Sync espelha as contas da plataforma no banco.
// Falhas de uma conta são registradas no resultado e a execução continua.
func (s *Service) Sync(ctx context.Context) (*domain.SyncResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, NewSyncError(ErrSyncInProgress, "")
	}
	defer s.running.Store(false)

	started := s.now()
	result := &domain.SyncResult{
		StartedAt: started,
		Mode:      s.platform.Mode(),
		Failures:  make([]domain.SyncFailure, 0),
	}

	owner, err := s.resolveOwner()
	if err != nil {
		telemetry.RecordSync(telemetry.OutcomeError, 0, 0, time.Since(started))
		return nil, NewSyncError(err, "falha ao resolver o business manager")
	}

	logger := logrus.WithFields(logrus.Fields{
		"mode":                result.Mode,
		"business_manager_id": owner.businessManagerID,
	})
	logger.Info("Iniciando sincronização de contas")

	accounts, err := s.platform.ListAccounts(ctx, owner.businessManagerID)
	if err != nil {
		logger.WithError(err).Error("Erro ao listar contas na plataforma")
		telemetry.RecordSync(telemetry.OutcomeError, 0, 0, time.Since(started))
		return nil, NewSyncError(err, "falha ao listar contas na plataforma")
	}

	vendor, err := s.ensureVendor(ctx, owner, accounts)
	if err != nil {
		logger.WithError(err).Error("Erro ao garantir o vendor")
		telemetry.RecordSync(telemetry.OutcomeError, 0, 0, time.Since(started))
		return nil, NewSyncError(err, "falha ao garantir o vendor")
	}

	result.VendorID = vendor.ID
	result.AccountsSeen = len(accounts)

	s.syncAccounts(ctx, vendor, owner, accounts, result)

	result.FinishedAt = s.now()

	telemetry.RecordSync(telemetry.OutcomeSuccess, result.AccountsSynced, result.AccountsFailed, time.Since(started))

	logger.WithFields(logrus.Fields{
		"accounts_seen":   result.AccountsSeen,
		"accounts_synced": result.AccountsSynced,
		"accounts_failed": result.AccountsFailed,
	}).Info("Sincronização de contas concluída")

	return result, nil
}

func (s *Service) resolveOwner() (ownerScope, error) {
	if s.platform.Mode() == config.ModeSimulation {
		contact := SampleVendorContact
		return ownerScope{
			businessManagerID: SampleBusinessManagerID,
			vendorName:        SampleVendorName,
			contactTelegram:   &contact,
		}, nil
	}

	if s.businessID == "" {
		return ownerScope{}, domain.NewConfigError("META_BUSINESS_ID", "business id obrigatório em modo live")
	}

	return ownerScope{businessManagerID: s.businessID}, nil
}

// ensureVendor cria o vendor na primeira sincronização. Vendors existentes nunca são renomeados.
func (s *Service) ensureVendor(ctx context.Context, owner ownerScope, accounts []metadomain.AccountSummary) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.GetByBusinessManagerID(ctx, owner.businessManagerID)
	if err != nil {
		return nil, err
	}

	if vendor != nil {
		return vendor, nil
	}

	name := owner.vendorName
	if name == "" {
		name = UnknownVendorName
		if len(accounts) > 0 && accounts[0].BusinessName != "" {
			name = accounts[0].BusinessName
		}
	}

	bmID := owner.businessManagerID
	vendor = &domain.Vendor{
		Name:              name,
		ContactTelegram:   owner.contactTelegram,
		BusinessManagerID: &bmID,
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"vendor_id":   vendor.ID,
		"vendor_name": vendor.Name,
	}).Info("Vendor criado")

	return vendor, nil
}

func (s *Service) syncAccounts(ctx context.Context, vendor *domain.Vendor, owner ownerScope, accounts []metadomain.AccountSummary, result *domain.SyncResult) {
	var mu sync.Mutex
	record := func(accountID string, err error) {
		mu.Lock()
		defer mu.Unlock()

		if err != nil {
			result.AccountsFailed++
			result.Failures = append(result.Failures, domain.SyncFailure{AccountID: accountID, Error: err.Error()})
			logrus.WithField("account_id", accountID).WithError(err).Error("Erro ao sincronizar conta")
			return
		}

		result.AccountsSynced++
	}

	if s.maxConcurrent == 1 {
		for _, summary := range accounts {
			record(summary.ID, s.syncAccount(ctx, vendor, owner, summary))
		}
		return
	}

	semaphore := make(chan struct{}, s.maxConcurrent)
	var wg sync.WaitGroup

	for _, summary := range accounts {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(summary metadomain.AccountSummary) {
			defer wg.Done()
			defer func() { <-semaphore }()

			record(summary.ID, s.syncAccount(ctx, vendor, owner, summary))
		}(summary)
	}

	wg.Wait()
}

// syncAccount grava a conta e a métrica do dia (meia-noite UTC)
func (s *Service) syncAccount(ctx context.Context, vendor *domain.Vendor, owner ownerScope, summary metadomain.AccountSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := s.now()

	timezone := summary.TimezoneName
	if timezone == "" {
		timezone = defaultTimezone
	}

	account := &domain.AdAccount{
		ID:                summary.ID,
		Name:              summary.Name,
		VendorID:          vendor.ID,
		BusinessManagerID: owner.businessManagerID,
		Status:            domain.AdAccountStatusFromCode(summary.StatusCode),
		Currency:          summary.Currency,
		Timezone:          timezone,
		LastSeenAt:        now,
	}

	if err := s.accountRepo.Upsert(ctx, account); err != nil {
		return fmt.Errorf("erro ao gravar conta: %w", err)
	}

	details, err := s.platform.GetAccountDetails(ctx, summary.ID)
	if err != nil {
		return fmt.Errorf("erro ao buscar detalhes da conta: %w", err)
	}

	day := domain.MetricDate(now)

	insights, err := s.platform.GetAccountInsights(ctx, summary.ID, day)
	if err != nil {
		return fmt.Errorf("erro ao buscar insights da conta: %w", err)
	}

	metric := &domain.AccountMetric{
		AdAccountID:   summary.ID,
		Date:          day,
		Spend:         insights.Spend,
		SpendCap:      details.SpendCap,
		Clicks:        insights.Clicks,
		Impressions:   insights.Impressions,
		CPC:           insights.CostPerClick,
		Balance:       details.Balance,
		StatusAtFetch: domain.AdAccountStatusFromCode(details.StatusCode),
		FetchedAt:     now,
	}

	if err := s.metricRepo.Upsert(ctx, metric); err != nil {
		return fmt.Errorf("erro ao gravar métrica: %w", err)
	}

	return nil
}
