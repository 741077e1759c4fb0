package repository

//go:generate mockgen -source=account_action.go -destination=mocks/account_action_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-control-api/internal/domain"
	"github.com/vfg2006/ad-control-api/pkg/utils"
)

const accountActionsTable = "account_actions"

// AccountActionRepository é somente inserção: a trilha de auditoria não é alterada nem apagada
type AccountActionRepository interface {
	Create(ctx context.Context, action *domain.AccountAction) error
	List(ctx context.Context, filter domain.ActionFilter) ([]*domain.AccountAction, error)
}

type accountActionRepository struct {
	conn *postgres.Connection
}

func NewAccountActionRepository(conn *postgres.Connection) AccountActionRepository {
	return &accountActionRepository{
		conn: conn,
	}
}

func (r *accountActionRepository) Create(ctx context.Context, action *domain.AccountAction) error {
	if action.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da ação: %w", err)
		}
		action.ID = id
	}

	payload, err := domain.EncodeActionPayload(action.Payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar payload da ação: %w", err)
	}

	query, args, err := squirrel.
		Insert(accountActionsTable).
		Columns("id", "performed_by", "ad_account_id", "target_type", "target_id", "action", "payload", "created_at").
		Values(
			action.ID,
			action.PerformedBy,
			action.AdAccountID,
			action.TargetType,
			action.TargetID,
			action.Action,
			payload,
			action.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapQueryError(err)
	}

	return nil
}

// List retorna as ações mais recentes primeiro
func (r *accountActionRepository) List(ctx context.Context, filter domain.ActionFilter) ([]*domain.AccountAction, error) {
	builder := squirrel.
		Select("id, performed_by, ad_account_id, target_type, target_id, action, payload, created_at").
		From(accountActionsTable).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.AdAccountID != "" {
		builder = builder.Where(squirrel.Eq{"ad_account_id": filter.AdAccountID})
	}

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	actions := make([]*domain.AccountAction, 0)
	for rows.Next() {
		var (
			action  domain.AccountAction
			payload []byte
		)

		if err := rows.Scan(
			&action.ID,
			&action.PerformedBy,
			&action.AdAccountID,
			&action.TargetType,
			&action.TargetID,
			&action.Action,
			&payload,
			&action.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler ação: %w", err)
		}

		action.Payload = domain.DecodeActionPayload(action.Action, payload)
		actions = append(actions, &action)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapQueryError(err)
	}

	return actions, nil
}
