package repository

//go:generate mockgen -source=account.go -destination=mocks/account_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-control-api/internal/domain"
)

const accountsTable = "ad_accounts a"

const accountColumns = "a.id, a.name, a.vendor_id, COALESCE(v.name, ''), a.business_manager_id, a.status, a.currency, a.timezone, a.last_seen_at, a.created_at, a.updated_at"

type AccountRepository interface {
	Upsert(ctx context.Context, account *domain.AdAccount) error
	GetByID(ctx context.Context, accountID string) (*domain.AdAccount, error)
	List(ctx context.Context) ([]*domain.AdAccount, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

// Upsert cria a conta ou atualiza apenas nome, status, moeda e last_seen_at.
// Vendor, business manager e timezone ficam como na criação.
func (r *accountRepository) Upsert(ctx context.Context, account *domain.AdAccount) error {
	query := squirrel.StatementBuilder.
		Insert("ad_accounts").
		Columns(
			"id",
			"name",
			"vendor_id",
			"business_manager_id",
			"status",
			"currency",
			"timezone",
			"last_seen_at",
			"created_at",
			"updated_at",
		).
		Values(
			account.ID,
			account.Name,
			account.VendorID,
			account.BusinessManagerID,
			account.Status,
			account.Currency,
			account.Timezone,
			account.LastSeenAt,
			account.LastSeenAt,
			account.LastSeenAt,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				currency = EXCLUDED.currency,
				last_seen_at = EXCLUDED.last_seen_at,
				updated_at = EXCLUDED.updated_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return wrapQueryError(err)
	}

	return nil
}

// GetByID retorna nil, nil quando a conta não existe
func (r *accountRepository) GetByID(ctx context.Context, accountID string) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select(accountColumns).
		From(accountsTable).
		LeftJoin("vendors v ON v.id = a.vendor_id").
		Where(squirrel.Eq{"a.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapQueryError(err)
	}

	return acc, nil
}

// List retorna todas as contas, mais recentes primeiro
func (r *accountRepository) List(ctx context.Context) ([]*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select(accountColumns).
		From(accountsTable).
		LeftJoin("vendors v ON v.id = a.vendor_id").
		OrderBy("a.created_at DESC", "a.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler conta: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapQueryError(err)
	}

	return accounts, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (*domain.AdAccount, error) {
	acc := &domain.AdAccount{}

	if err := row.Scan(
		&acc.ID,
		&acc.Name,
		&acc.VendorID,
		&acc.VendorName,
		&acc.BusinessManagerID,
		&acc.Status,
		&acc.Currency,
		&acc.Timezone,
		&acc.LastSeenAt,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return acc, nil
}
