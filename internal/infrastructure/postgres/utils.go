package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/boutique-analytics/internal/domain"
)

// Códigos SQLSTATE relevantes.
const (
	codeUniqueViolation = "23505"
	codeUndefinedColumn = "42703"
	codeUndefinedTable  = "42P01"
)

// classify traduce un error de pgx a un error de dominio conservando el original.
//   - tabla o columna inexistente → domain.ErrSchemaMismatch
//   - violación de unicidad       → domain.ErrDuplicate
//   - cualquier otro (conexión, timeout, lectura) → domain.ErrStoreUnavailable
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUndefinedColumn, codeUndefinedTable:
			return fmt.Errorf("%s: %w: %w", op, domain.ErrSchemaMismatch, err)
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w: %w", op, domain.ErrDuplicate, err)
		}
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
