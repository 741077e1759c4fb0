package repository

//go:generate mockgen -source=account_metric.go -destination=mocks/account_metric_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-control-api/internal/domain"
)

const (
	accountMetricsTable = "account_metrics"
	metricColumns       = "id, ad_account_id, date, spend, spend_cap, clicks, impressions, cpc, balance, status_at_fetch, fetched_at"
)

type AccountMetricRepository interface {
	Upsert(ctx context.Context, metric *domain.AccountMetric) error
	LatestByAccount(ctx context.Context) (map[string]*domain.AccountMetric, error)
	ListByAccount(ctx context.Context, accountID string, limit uint64) ([]*domain.AccountMetric, error)
}

type accountMetricRepository struct {
	conn *postgres.Connection
}

func NewAccountMetricRepository(conn *postgres.Connection) AccountMetricRepository {
	return &accountMetricRepository{
		conn: conn,
	}
}

// Upsert grava o snapshot do dia. Uma segunda execução no mesmo dia sobrescreve a linha.
func (r *accountMetricRepository) Upsert(ctx context.Context, metric *domain.AccountMetric) error {
	query := squirrel.StatementBuilder.
		Insert(accountMetricsTable).
		Columns(
			"ad_account_id",
			"date",
			"spend",
			"spend_cap",
			"clicks",
			"impressions",
			"cpc",
			"balance",
			"status_at_fetch",
			"fetched_at",
		).
		Values(
			metric.AdAccountID,
			domain.MetricDate(metric.Date),
			metric.Spend,
			metric.SpendCap,
			metric.Clicks,
			metric.Impressions,
			metric.CPC,
			metric.Balance,
			metric.StatusAtFetch,
			metric.FetchedAt,
		).
		Suffix(`
			ON CONFLICT (ad_account_id, date) DO UPDATE SET
				spend = EXCLUDED.spend,
				spend_cap = EXCLUDED.spend_cap,
				clicks = EXCLUDED.clicks,
				impressions = EXCLUDED.impressions,
				cpc = EXCLUDED.cpc,
				balance = EXCLUDED.balance,
				status_at_fetch = EXCLUDED.status_at_fetch,
				fetched_at = EXCLUDED.fetched_at
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&metric.ID); err != nil {
		return wrapQueryError(err)
	}

	return nil
}

// LatestByAccount retorna a métrica mais recente de cada conta
func (r *accountMetricRepository) LatestByAccount(ctx context.Context) (map[string]*domain.AccountMetric, error) {
	query, args, err := squirrel.
		Select(metricColumns).
		Options("DISTINCT ON (ad_account_id)").
		From(accountMetricsTable).
		OrderBy("ad_account_id", "date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	metrics, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	latest := make(map[string]*domain.AccountMetric, len(metrics))
	for _, m := range metrics {
		latest[m.AdAccountID] = m
	}

	return latest, nil
}

// ListByAccount retorna as últimas métricas da conta, mais recentes primeiro
func (r *accountMetricRepository) ListByAccount(ctx context.Context, accountID string, limit uint64) ([]*domain.AccountMetric, error) {
	builder := squirrel.
		Select(metricColumns).
		From(accountMetricsTable).
		Where(squirrel.Eq{"ad_account_id": accountID}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return r.query(ctx, query, args...)
}

func (r *accountMetricRepository) query(ctx context.Context, query string, args ...any) ([]*domain.AccountMetric, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	metrics := make([]*domain.AccountMetric, 0)
	for rows.Next() {
		m := &domain.AccountMetric{}
		if err := rows.Scan(
			&m.ID,
			&m.AdAccountID,
			&m.Date,
			&m.Spend,
			&m.SpendCap,
			&m.Clicks,
			&m.Impressions,
			&m.CPC,
			&m.Balance,
			&m.StatusAtFetch,
			&m.FetchedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler métrica: %w", err)
		}
		metrics = append(metrics, m)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapQueryError(err)
	}

	return metrics, nil
}
