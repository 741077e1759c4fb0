package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-control-api/internal/config"
	"github.com/vfg2006/ad-control-api/internal/domain"
	"github.com/vfg2006/ad-control-api/internal/usecases/syncing"
	syncmocks "github.com/vfg2006/ad-control-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestScheduler(t *testing.T, enabled bool) (*AccountSyncService, *syncmocks.MockSyncService) {
	ctrl := gomock.NewController(t)
	syncService := syncmocks.NewMockSyncService(ctrl)

	cfg := &config.Config{Sync: config.Sync{CronSchedule: "0 * * * *", CronEnabled: enabled}}
	return NewAccountSyncService(syncService, cfg), syncService
}

func TestAccountSyncService_RunNowRecordsStatus(t *testing.T) {
	tests := []struct {
		name       string
		result     *domain.SyncResult
		err        error
		wantResult bool
		wantError  string
	}{
		{
			name:       "Sincronização concluída",
			result:     &domain.SyncResult{AccountsSeen: 3, AccountsSynced: 3},
			wantResult: true,
		},
		{
			name:      "Sincronização com erro",
			err:       errors.New("plataforma indisponível"),
			wantError: "plataforma indisponível",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, syncService := newTestScheduler(t, false)
			syncService.EXPECT().Sync(gomock.Any()).Return(tt.result, tt.err)

			result, err := svc.RunNow(context.Background())
			status := svc.GetStatus()

			assert.False(t, status.Running)
			require.NotNil(t, status.LastStartedAt)
			require.NotNil(t, status.LastCompletedAt)
			assert.Equal(t, tt.wantError, status.LastError)

			if tt.wantResult {
				require.NoError(t, err)
				assert.Same(t, tt.result, result)
				assert.Same(t, tt.result, status.LastResult)
			} else {
				require.Error(t, err)
				assert.Nil(t, status.LastResult)
			}
		})
	}
}

func TestAccountSyncService_RejectsOverlappingRun(t *testing.T) {
	svc, syncService := newTestScheduler(t, false)

	entered := make(chan struct{})
	release := make(chan struct{})

	syncService.EXPECT().Sync(gomock.Any()).DoAndReturn(func(context.Context) (*domain.SyncResult, error) {
		close(entered)
		<-release
		return &domain.SyncResult{}, nil
	}).Times(1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = svc.RunNow(context.Background())
	}()

	<-entered
	assert.True(t, svc.GetStatus().Running)

	_, err := svc.RunNow(context.Background())
	assert.True(t, errors.Is(err, syncing.ErrSyncInProgress))
	assert.False(t, svc.TriggerManualSync())

	close(release)
	<-done
	assert.False(t, svc.GetStatus().Running)
}

func TestAccountSyncService_TriggerManualSync(t *testing.T) {
	svc, syncService := newTestScheduler(t, false)

	called := make(chan struct{})
	syncService.EXPECT().Sync(gomock.Any()).DoAndReturn(func(context.Context) (*domain.SyncResult, error) {
		close(called)
		return &domain.SyncResult{}, nil
	})

	assert.True(t, svc.TriggerManualSync())

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("sincronização manual não foi executada")
	}

	assert.Eventually(t, func() bool { return svc.GetStatus().LastResult != nil }, 2*time.Second, 10*time.Millisecond)
}

func TestAccountSyncService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda", func(t *testing.T) {
		svc, _ := newTestScheduler(t, false)

		require.NoError(t, svc.Start(context.Background()))
		status := svc.GetStatus()
		assert.False(t, status.Enabled)
		assert.True(t, status.ManualTriggerOnly)
		assert.Nil(t, status.NextRunAt)
	})

	t.Run("Habilitado agenda a próxima execução", func(t *testing.T) {
		svc, syncService := newTestScheduler(t, true)
		syncService.EXPECT().Sync(gomock.Any()).Return(&domain.SyncResult{}, nil).AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		require.NoError(t, svc.Start(ctx))
		status := svc.GetStatus()
		assert.True(t, status.Enabled)
		assert.Equal(t, "0 * * * *", status.CronSchedule)
		require.NotNil(t, status.NextRunAt)
		assert.True(t, status.NextRunAt.After(time.Now()))
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cfg := &config.Config{Sync: config.Sync{CronSchedule: "todo dia", CronEnabled: true}}
		svc := NewAccountSyncService(syncmocks.NewMockSyncService(ctrl), cfg)

		assert.Error(t, svc.Start(context.Background()))
	})
}
