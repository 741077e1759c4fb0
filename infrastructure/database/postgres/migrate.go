package postgres

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	MigrateUp   = "up"
	MigrateDown = "down"
)

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar driver de migração: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir migrações embutidas: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar instância de migração: %w", err)
	}

	return m, nil
}

// RunMigrations aplica (up) ou desfaz (down) as migrações embutidas no binário
func (c *Connection) RunMigrations(direction string) error {
	m, err := newMigrator(c.DB)
	if err != nil {
		return err
	}

	switch direction {
	case MigrateUp:
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("erro ao aplicar migrações: %w", err)
		}
	case MigrateDown:
		if err := m.Down(); err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("erro ao desfazer migrações: %w", err)
		}
	default:
		return fmt.Errorf("direção de migração inválida: %s (use 'up' ou 'down')", direction)
	}

	return nil
}

// MigrationVersion retorna a versão atual do schema
func (c *Connection) MigrationVersion() (uint, bool, error) {
	m, err := newMigrator(c.DB)
	if err != nil {
		return 0, false, err
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return 0, false, fmt.Errorf("erro ao obter versão das migrações: %w", err)
	}

	return version, dirty, nil
}
