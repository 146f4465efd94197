package postgres

import (
	"strings"

	"userapi/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// isUniqueConstraintViolation recognises duplicate keys from gorm's translated
// error or from the raw pgx error. The text match is the last resort.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "sqlstate "+uniqueViolation) ||
		strings.Contains(errMsg, "duplicate key value")
}
