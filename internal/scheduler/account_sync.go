package scheduler

//go:generate mockgen -source=account_sync.go -destination=mocks/account_sync_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-control-api/internal/config"
	"github.com/vfg2006/ad-control-api/internal/domain"
	"github.com/vfg2006/ad-control-api/internal/usecases/syncing"
)

// AccountSyncConfig representa a configuração do agendador de sincronização de contas
type AccountSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type SyncStatus struct {
	Enabled           bool               `json:"enabled"`
	CronSchedule      string             `json:"cron_schedule"`
	Running           bool               `json:"running"`
	NextRunAt         *time.Time         `json:"next_run_at,omitempty"`
	LastStartedAt     *time.Time         `json:"last_started_at,omitempty"`
	LastCompletedAt   *time.Time         `json:"last_completed_at,omitempty"`
	LastError         string             `json:"last_error,omitempty"`
	LastResult        *domain.SyncResult `json:"last_result,omitempty"`
	ManualTriggerOnly bool               `json:"manual_trigger_only"`
}

type AccountSyncScheduler interface {
	Start(ctx context.Context) error
	RunNow(ctx context.Context) (*domain.SyncResult, error)
	TriggerManualSync() bool
	GetStatus() SyncStatus
}

// AccountSyncService agenda a sincronização de contas. A execução em si fica no syncing.SyncService.
type AccountSyncService struct {
	scheduler   *gocron.Scheduler
	config      AccountSyncConfig
	syncService syncing.SyncService

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.SyncResult
	lastErr             error
}

func NewAccountSyncService(syncService syncing.SyncService, appConfig *config.Config) *AccountSyncService {
	syncConfig := AccountSyncConfig{
		CronSchedule: appConfig.Sync.CronSchedule,
		SyncEnabled:  appConfig.Sync.CronEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de contas carregada")

	return &AccountSyncService{
		scheduler:   gocron.NewScheduler(time.UTC),
		config:      syncConfig,
		syncService: syncService,
	}
}

// Start inicia o agendador
func (s *AccountSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada de contas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de contas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).SingletonMode().Do(func() {
		_, _ = s.RunNow(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de contas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de contas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa uma sincronização e guarda o resultado no status.
// Execuções sobrepostas devolvem syncing.ErrSyncInProgress.
func (s *AccountSyncService) RunNow(ctx context.Context) (*domain.SyncResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de contas já em andamento, ignorando")
		return nil, syncing.NewSyncError(syncing.ErrSyncInProgress, "")
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	result, err := s.syncService.Sync(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastErr = err
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização de contas")
		return nil, err
	}
	s.lastResult = result

	return result, nil
}

// TriggerManualSync inicia uma sincronização em segundo plano. Devolve false se já houver uma rodando.
func (s *AccountSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização de contas já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de contas")
	go func() { _, _ = s.RunNow(context.Background()) }()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *AccountSyncService) GetStatus() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{
		Enabled:           s.config.SyncEnabled,
		CronSchedule:      s.config.CronSchedule,
		Running:           s.syncRunning,
		LastResult:        s.lastResult,
		ManualTriggerOnly: !s.config.SyncEnabled,
	}

	if !s.lastSyncStartedAt.IsZero() {
		started := s.lastSyncStartedAt
		status.LastStartedAt = &started
	}

	if !s.lastSyncCompletedAt.IsZero() {
		completed := s.lastSyncCompletedAt
		status.LastCompletedAt = &completed
	}

	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}

	if s.config.SyncEnabled {
		if _, next := s.scheduler.NextRun(); !next.IsZero() {
			status.NextRunAt = &next
		}
	}

	return status
}
