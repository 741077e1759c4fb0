package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-control-api/internal/domain"
)

var metricRowColumns = []string{
	"id", "ad_account_id", "date", "spend", "spend_cap", "clicks",
	"impressions", "cpc", "balance", "status_at_fetch", "fetched_at",
}

func TestAccountMetricRepository_Upsert_NormalizesDate(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewAccountMetricRepository(conn)
	fetchedAt := time.Date(2024, 3, 1, 22, 45, 0, 0, time.UTC)
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO account_metrics (.+) ON CONFLICT \(ad_account_id, date\) DO UPDATE SET`).
		WithArgs("act_1", day, 120.5, 1000.0, int64(30), int64(900), 4.02, 50.0, domain.AdAccountStatusActive, fetchedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	metric := &domain.AccountMetric{
		AdAccountID:   "act_1",
		Date:          fetchedAt,
		Spend:         120.5,
		SpendCap:      1000,
		Clicks:        30,
		Impressions:   900,
		CPC:           4.02,
		Balance:       50,
		StatusAtFetch: domain.AdAccountStatusActive,
		FetchedAt:     fetchedAt,
	}
	require.NoError(t, repo.Upsert(context.Background(), metric))
	assert.Equal(t, int64(7), metric.ID)
}

func TestAccountMetricRepository_LatestByAccount(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewAccountMetricRepository(conn)
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT DISTINCT ON \\(ad_account_id\\) (.+) FROM account_metrics ORDER BY ad_account_id, date DESC").
		WillReturnRows(sqlmock.NewRows(metricRowColumns).
			AddRow(int64(1), "act_1", day, 10.0, 0.0, int64(2), int64(100), 5.0, 0.0, "ACTIVE", day).
			AddRow(int64(2), "act_2", day, 20.0, 0.0, int64(4), int64(200), 5.0, 0.0, "CLOSED", day))

	latest, err := repo.LatestByAccount(context.Background())
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, 20.0, latest["act_2"].Spend)
	assert.Equal(t, domain.AdAccountStatusClosed, latest["act_2"].StatusAtFetch)
}

func TestAccountMetricRepository_ListByAccount_AppliesLimit(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewAccountMetricRepository(conn)

	mock.ExpectQuery("SELECT (.+) FROM account_metrics WHERE ad_account_id = \\$1 ORDER BY date DESC LIMIT 10").
		WithArgs("act_1").
		WillReturnRows(sqlmock.NewRows(metricRowColumns))

	metrics, err := repo.ListByAccount(context.Background(), "act_1", 10)
	require.NoError(t, err)
	assert.Empty(t, metrics)
}
