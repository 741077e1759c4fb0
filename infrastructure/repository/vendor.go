package repository

//go:generate mockgen -source=vendor.go -destination=mocks/vendor_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-control-api/internal/domain"
	"github.com/vfg2006/ad-control-api/pkg/utils"
)

const vendorsTable = "vendors"

type VendorRepository interface {
	GetByBusinessManagerID(ctx context.Context, businessManagerID string) (*domain.Vendor, error)
	Create(ctx context.Context, vendor *domain.Vendor) error
}

type vendorRepository struct {
	conn *postgres.Connection
}

func NewVendorRepository(conn *postgres.Connection) VendorRepository {
	return &vendorRepository{
		conn: conn,
	}
}

// GetByBusinessManagerID retorna nil, nil quando o vendor ainda não existe
func (r *vendorRepository) GetByBusinessManagerID(ctx context.Context, businessManagerID string) (*domain.Vendor, error) {
	query, args, err := squirrel.
		Select("id, name, contact_telegram, business_manager_id, created_at").
		From(vendorsTable).
		Where(squirrel.Eq{"business_manager_id": businessManagerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	vendor := &domain.Vendor{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&vendor.ID,
		&vendor.Name,
		&vendor.ContactTelegram,
		&vendor.BusinessManagerID,
		&vendor.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapQueryError(err)
	}

	return vendor, nil
}

// Create insere o vendor. Vendors nunca são atualizados pela sincronização.
func (r *vendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	if vendor.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do vendor: %w", err)
		}
		vendor.ID = id
	}

	query, args, err := squirrel.
		Insert(vendorsTable).
		Columns("id", "name", "contact_telegram", "business_manager_id").
		Values(vendor.ID, vendor.Name, vendor.ContactTelegram, vendor.BusinessManagerID).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&vendor.CreatedAt); err != nil {
		return wrapQueryError(err)
	}

	return nil
}
