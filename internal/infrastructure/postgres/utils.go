package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUndefinedTable indica si el error es 42P01 (tabla inexistente, típicamente migraciones sin aplicar).
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01"
	}
	return false
}

// deref devuelve "" para columnas de texto NULL.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
