package account

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

type fixture struct {
	platform    *metamocks.MockAdPlatform
	accountRepo *mocks.MockAccountRepository
	metricRepo  *mocks.MockAccountMetricRepository
	actionRepo  *mocks.MockAccountActionRepository
	service     AccountService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		platform:    metamocks.NewMockAdPlatform(ctrl),
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		metricRepo:  mocks.NewMockAccountMetricRepository(ctrl),
		actionRepo:  mocks.NewMockAccountActionRepository(ctrl),
	}
	f.service = NewService(f.platform, f.accountRepo, f.metricRepo, f.actionRepo)

	return f
}

func TestListAccounts(t *testing.T) {
	f := newFixture(t)
	metric := &domain.AccountMetric{AdAccountID: "act_1", Spend: 12.5}

	f.accountRepo.EXPECT().List(gomock.Any()).Return([]*domain.AdAccount{
		{ID: "act_2", Name: "Sem vendor", Status: domain.AdAccountStatusDisabled},
		{ID: "act_1", Name: "Conta", VendorName: "Sample Vendor", Status: domain.AdAccountStatusActive},
	}, nil)
	f.metricRepo.EXPECT().LatestByAccount(gomock.Any()).Return(map[string]*domain.AccountMetric{"act_1": metric}, nil)

	accounts, err := f.service.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, "act_2", accounts[0].ID)
	assert.Equal(t, UnknownVendor, accounts[0].Vendor)
	assert.Nil(t, accounts[0].LatestMetric)

	assert.Equal(t, "Sample Vendor", accounts[1].Vendor)
	assert.Same(t, metric, accounts[1].LatestMetric)
}

func TestListAccounts_DatabaseError(t *testing.T) {
	f := newFixture(t)

	f.accountRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("conexão recusada"))

	_, err := f.service.ListAccounts(context.Background())
	require.Error(t, err)

	var accErr *AccountError
	require.True(t, errors.As(err, &accErr))
	assert.Equal(t, "SRV_002", accErr.Code)
	assert.True(t, errors.Is(err, ErrFetchAccounts))
}

func TestGetAccountDetails(t *testing.T) {
	f := newFixture(t)
	day := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	metrics := []*domain.AccountMetric{{AdAccountID: "act_1", Date: day}, {AdAccountID: "act_1", Date: day.AddDate(0, 0, -1)}}

	f.accountRepo.EXPECT().GetByID(gomock.Any(), "act_1").Return(&domain.AdAccount{ID: "act_1", VendorName: "Loja"}, nil)
	f.platform.EXPECT().ListCampaigns(gomock.Any(), "act_1").Return([]domain.Campaign{{ID: "camp_1", Status: "ACTIVE", EffectiveStatus: "WITH_ISSUES"}}, nil)
	f.metricRepo.EXPECT().ListByAccount(gomock.Any(), "act_1", uint64(10)).Return(metrics, nil)

	details, err := f.service.GetAccountDetails(context.Background(), "act_1")
	require.NoError(t, err)

	assert.Equal(t, "Loja", details.Account.Vendor)
	assert.Same(t, metrics[0], details.Account.LatestMetric)
	require.Len(t, details.Campaigns, 1)
	assert.Equal(t, "WITH_ISSUES", details.Campaigns[0].EffectiveStatus)
	assert.Len(t, details.Metrics, 2)
}

func TestGetAccountDetails_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *fixture)
		wantCode string
		wantIs   error
	}{
		{
			name: "Conta inexistente",
			setup: func(f *fixture) {
				f.accountRepo.EXPECT().GetByID(gomock.Any(), "act_1").Return(nil, nil)
				f.platform.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).Times(0)
			},
			wantCode: "RES_001",
			wantIs:   domain.ErrNotFound,
		},
		{
			name: "Plataforma indisponível",
			setup: func(f *fixture) {
				f.accountRepo.EXPECT().GetByID(gomock.Any(), "act_1").Return(&domain.AdAccount{ID: "act_1"}, nil)
				f.platform.EXPECT().ListCampaigns(gomock.Any(), "act_1").Return(nil, &domain.RemoteError{Op: "list_campaigns", Retryable: true, Err: domain.ErrTimeout})
			},
			wantCode: "SRV_004",
			wantIs:   domain.ErrTimeout,
		},
		{
			name: "Modo live sem configuração",
			setup: func(f *fixture) {
				f.accountRepo.EXPECT().GetByID(gomock.Any(), "act_1").Return(&domain.AdAccount{ID: "act_1"}, nil)
				f.platform.EXPECT().ListCampaigns(gomock.Any(), "act_1").Return(nil, domain.NewConfigError("META_ACCESS_TOKEN", "token ausente"))
			},
			wantCode: "CFG_001",
			wantIs:   domain.ErrConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			details, err := f.service.GetAccountDetails(context.Background(), "act_1")
			require.Error(t, err)
			assert.Nil(t, details)
			assert.True(t, errors.Is(err, tt.wantIs))

			var accErr *AccountError
			require.True(t, errors.As(err, &accErr))
			assert.Equal(t, tt.wantCode, accErr.Code)
			assert.Equal(t, "act_1", accErr.AccountID)
		})
	}
}

func TestListActions_Limit(t *testing.T) {
	tests := []struct {
		name      string
		limit     uint64
		wantLimit uint64
	}{
		{name: "Sem limite usa o padrão", limit: 0, wantLimit: 50},
		{name: "Limite dentro da faixa", limit: 20, wantLimit: 20},
		{name: "Limite acima do teto", limit: 10000, wantLimit: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.actionRepo.EXPECT().
				List(gomock.Any(), domain.ActionFilter{AdAccountID: "act_1", Limit: tt.wantLimit}).
				Return(nil, nil)

			actions, err := f.service.ListActions(context.Background(), domain.ActionFilter{AdAccountID: "act_1", Limit: tt.limit})
			require.NoError(t, err)
			assert.NotNil(t, actions)
			assert.Empty(t, actions)
		})
	}
}

func TestSummary(t *testing.T) {
	f := newFixture(t)

	f.accountRepo.EXPECT().List(gomock.Any()).Return([]*domain.AdAccount{
		{ID: "act_1", Status: domain.AdAccountStatusActive},
		{ID: "act_2", Status: domain.AdAccountStatusActive},
		{ID: "act_3", Status: domain.AdAccountStatusClosed},
	}, nil)
	f.metricRepo.EXPECT().LatestByAccount(gomock.Any()).Return(map[string]*domain.AccountMetric{
		"act_1": {Spend: 10.111, Clicks: 3},
		"act_3": {Spend: 5.2, Clicks: 7},
	}, nil)

	summary, err := f.service.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &domain.DashboardSummary{
		TotalAccounts:  3,
		ActiveAccounts: 2,
		TotalSpend:     15.31,
		TotalClicks:    10,
	}, summary)
}
