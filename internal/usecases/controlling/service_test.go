package controlling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metamocks "github.com/vfg2006/ad-control-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ad-control-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-control-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)

type fixture struct {
	platform    *metamocks.MockAdPlatform
	accountRepo *mocks.MockAccountRepository
	actionRepo  *mocks.MockAccountActionRepository
	service     ControlService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		platform:    metamocks.NewMockAdPlatform(ctrl),
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		actionRepo:  mocks.NewMockAccountActionRepository(ctrl),
	}
	f.service = NewService(f.platform, f.accountRepo, f.actionRepo, WithClock(func() time.Time { return fixedNow }))

	return f
}

func TestSetCampaignStatus_InvalidInputHasNoSideEffects(t *testing.T) {
	tests := []struct {
		name  string
		req   SetCampaignStatusRequest
		field string
	}{
		{
			name:  "Status desconhecido",
			req:   SetCampaignStatusRequest{CampaignID: "camp_1", Status: "DELETED"},
			field: "status",
		},
		{
			name:  "Status vazio",
			req:   SetCampaignStatusRequest{CampaignID: "camp_1"},
			field: "status",
		},
		{
			name:  "Status em minúsculas",
			req:   SetCampaignStatusRequest{CampaignID: "camp_1", Status: "paused"},
			field: "status",
		},
		{
			name:  "Status com caixa mista",
			req:   SetCampaignStatusRequest{CampaignID: "camp_1", Status: "Active"},
			field: "status",
		},
		{
			name:  "Status com espaços",
			req:   SetCampaignStatusRequest{CampaignID: "camp_1", Status: " PAUSED "},
			field: "status",
		},
		{
			name:  "Campanha vazia",
			req:   SetCampaignStatusRequest{CampaignID: "  ", Status: "PAUSED"},
			field: "campaign_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.platform.EXPECT().SetCampaignStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			f.actionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			action, err := f.service.SetCampaignStatus(context.Background(), "snafu", tt.req)
			require.Error(t, err)
			assert.Nil(t, action)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			var validationErr *domain.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)

			var actionErr *ActionError
			require.True(t, errors.As(err, &actionErr))
			assert.Equal(t, "VAL_001", actionErr.Code)
		})
	}
}

func TestSetCampaignStatus_WritesOneAuditRecord(t *testing.T) {
	tests := []struct {
		name          string
		req           SetCampaignStatusRequest
		knownAccount  bool
		wantStatus    domain.CampaignStatus
		wantAction    string
		wantAccountID string
	}{
		{
			name:          "Pausar sem dica de conta",
			req:           SetCampaignStatusRequest{CampaignID: "camp_1", Status: "PAUSED"},
			wantStatus:    domain.CampaignStatusPaused,
			wantAction:    "set_status_paused",
			wantAccountID: domain.UnknownAccountID,
		},
		{
			name:          "Ativar com conta existente",
			req:           SetCampaignStatusRequest{CampaignID: "camp_1", Status: "ACTIVE", AccountID: "act_1"},
			knownAccount:  true,
			wantStatus:    domain.CampaignStatusActive,
			wantAction:    "set_status_active",
			wantAccountID: "act_1",
		},
		{
			name:          "Conta informada não existe",
			req:           SetCampaignStatusRequest{CampaignID: "camp_1", Status: "PAUSED", AccountID: "act_404"},
			wantStatus:    domain.CampaignStatusPaused,
			wantAction:    "set_status_paused",
			wantAccountID: domain.UnknownAccountID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.req.AccountID != "" {
				var acc *domain.AdAccount
				if tt.knownAccount {
					acc = &domain.AdAccount{ID: tt.req.AccountID}
				}
				f.accountRepo.EXPECT().GetByID(gomock.Any(), tt.req.AccountID).Return(acc, nil)
			}

			f.platform.EXPECT().SetCampaignStatus(gomock.Any(), "camp_1", tt.wantStatus).Return(nil)

			var saved *domain.AccountAction
			f.actionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.AccountAction) error {
				saved = a
				return nil
			}).Times(1)

			action, err := f.service.SetCampaignStatus(context.Background(), "snafu", tt.req)
			require.NoError(t, err)
			require.NotNil(t, saved)
			assert.Same(t, saved, action)

			assert.Equal(t, "snafu", action.PerformedBy)
			assert.Equal(t, tt.wantAccountID, action.AdAccountID)
			assert.Equal(t, domain.ActionTargetCampaign, action.TargetType)
			assert.Equal(t, "camp_1", action.TargetID)
			assert.Equal(t, tt.wantAction, action.Action)
			assert.Equal(t, fixedNow, action.CreatedAt)
			assert.Equal(t, domain.SetCampaignStatusPayload{Status: tt.wantStatus, Timestamp: fixedNow}, action.Payload)
		})
	}
}

func TestSetCampaignStatus_RemoteFailureWritesNoAudit(t *testing.T) {
	f := newFixture(t)

	remoteErr := &domain.RemoteError{Op: "set_campaign_status", StatusCode: 400, Err: errors.New("campanha arquivada")}
	f.platform.EXPECT().SetCampaignStatus(gomock.Any(), "camp_1", domain.CampaignStatusPaused).Return(remoteErr)
	f.actionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	action, err := f.service.SetCampaignStatus(context.Background(), "snafu", SetCampaignStatusRequest{CampaignID: "camp_1", Status: "PAUSED"})
	require.Error(t, err)
	assert.Nil(t, action)
	assert.True(t, errors.Is(err, domain.ErrRemoteCall))

	var actionErr *ActionError
	require.True(t, errors.As(err, &actionErr))
	assert.Equal(t, "SRV_003", actionErr.Code)
}

func TestSetCampaignStatus_UnknownCampaignIsNotFound(t *testing.T) {
	f := newFixture(t)

	f.platform.EXPECT().SetCampaignStatus(gomock.Any(), "camp_x", domain.CampaignStatusPaused).
		Return(domain.NewNotFoundError("campaign", "camp_x"))
	f.actionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	action, err := f.service.SetCampaignStatus(context.Background(), "snafu", SetCampaignStatusRequest{CampaignID: "camp_x", Status: "PAUSED"})
	require.Error(t, err)
	assert.Nil(t, action)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.False(t, errors.Is(err, domain.ErrRemoteCall))

	var actionErr *ActionError
	require.True(t, errors.As(err, &actionErr))
	assert.Equal(t, "RES_001", actionErr.Code)
}

func TestPauseAllCampaigns_MissingAccount(t *testing.T) {
	f := newFixture(t)

	f.accountRepo.EXPECT().GetByID(gomock.Any(), "act_404").Return(nil, nil)
	f.platform.EXPECT().PauseAllCampaigns(gomock.Any(), gomock.Any()).Times(0)
	f.actionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	action, err := f.service.PauseAllCampaigns(context.Background(), "snafu", "act_404")
	require.Error(t, err)
	assert.Nil(t, action)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	var actionErr *ActionError
	require.True(t, errors.As(err, &actionErr))
	assert.Equal(t, "RES_001", actionErr.Code)
	assert.Equal(t, "act_404", actionErr.AccountID)
}

func TestPauseAllCampaigns_WritesAudit(t *testing.T) {
	tests := []struct {
		name      string
		paused    []string
		wantIDs   []string
		wantCount int
	}{
		{
			name:      "Campanhas ativas pausadas",
			paused:    []string{"camp_1", "camp_3"},
			wantIDs:   []string{"camp_1", "camp_3"},
			wantCount: 2,
		},
		{
			name:      "Nenhuma campanha ativa grava lista vazia",
			paused:    nil,
			wantIDs:   []string{},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.accountRepo.EXPECT().GetByID(gomock.Any(), "act_1").Return(&domain.AdAccount{ID: "act_1"}, nil)
			f.platform.EXPECT().PauseAllCampaigns(gomock.Any(), "act_1").Return(tt.paused, nil)

			var saved []*domain.AccountAction
			f.actionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.AccountAction) error {
				saved = append(saved, a)
				return nil
			})

			action, err := f.service.PauseAllCampaigns(context.Background(), "snafu", "act_1")
			require.NoError(t, err)
			require.Len(t, saved, 1)

			assert.Equal(t, domain.ActionPauseAllCampaigns, action.Action)
			assert.Equal(t, domain.ActionTargetAccount, action.TargetType)
			assert.Equal(t, "act_1", action.TargetID)
			assert.Equal(t, "act_1", action.AdAccountID)

			payload, ok := action.Payload.(domain.PauseAllCampaignsPayload)
			require.True(t, ok)
			assert.Equal(t, tt.wantIDs, payload.PausedCampaignIDs)
			assert.Equal(t, tt.wantCount, payload.PausedCount)
			assert.Equal(t, fixedNow, payload.Timestamp)
		})
	}
}

func TestPauseAllCampaigns_BatchFailureWritesNoAudit(t *testing.T) {
	f := newFixture(t)

	f.accountRepo.EXPECT().GetByID(gomock.Any(), "act_1").Return(&domain.AdAccount{ID: "act_1"}, nil)
	f.platform.EXPECT().PauseAllCampaigns(gomock.Any(), "act_1").Return(nil, &domain.RemoteError{Op: "pause_all_campaigns", Err: errors.New("falha em camp_2")})
	f.actionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.service.PauseAllCampaigns(context.Background(), "snafu", "act_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "camp_2")
}
