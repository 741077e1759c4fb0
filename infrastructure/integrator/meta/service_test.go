package meta

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-control-api/internal/config"
	"github.com/vfg2006/ad-control-api/internal/domain"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		meta      config.Meta
		wantMode  string
		wantErrOn string
	}{
		{
			name:     "Modo simulação não exige credenciais",
			meta:     config.Meta{Mode: config.ModeSimulation},
			wantMode: config.ModeSimulation,
		},
		{
			name:     "Modo live com credenciais",
			meta:     config.Meta{Mode: config.ModeLive, AccessToken: "token", BusinessID: "42", URL: "http://localhost", RequestTimeout: time.Second},
			wantMode: config.ModeLive,
		},
		{
			name:      "Modo live sem token",
			meta:      config.Meta{Mode: config.ModeLive, BusinessID: "42"},
			wantErrOn: "META_ACCESS_TOKEN",
		},
		{
			name:      "Modo live sem business id",
			meta:      config.Meta{Mode: config.ModeLive, AccessToken: "token"},
			wantErrOn: "META_BUSINESS_ID",
		},
		{
			name:      "Modo desconhecido",
			meta:      config.Meta{Mode: "sandbox"},
			wantErrOn: "META_MODE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform, err := New(&config.Config{Meta: tt.meta})

			if tt.wantErrOn != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrConfiguration))

				var cfgErr *domain.ConfigError
				require.True(t, errors.As(err, &cfgErr))
				assert.Equal(t, tt.wantErrOn, cfgErr.Key)
				assert.Nil(t, platform)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, platform.Mode())
		})
	}
}

func TestUnavailable_FailsEveryOperation(t *testing.T) {
	cfgErr := domain.NewConfigError("META_ACCESS_TOKEN", "ausente")
	platform := Unavailable(cfgErr)
	ctx := context.Background()

	_, err := platform.ListAccounts(ctx, "42")
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = platform.GetAccountDetails(ctx, "act_1")
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = platform.GetAccountInsights(ctx, "act_1", time.Now())
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = platform.ListCampaigns(ctx, "act_1")
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	assert.ErrorIs(t, platform.SetCampaignStatus(ctx, "c1", domain.CampaignStatusPaused), domain.ErrConfiguration)

	_, err = platform.PauseAllCampaigns(ctx, "act_1")
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
