package repository

import (
	"fmt"

	"github.com/lib/pq"
)

// wrapQueryError preserva o código do Postgres quando disponível
func wrapQueryError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("failed to execute query: %w", err)
}
