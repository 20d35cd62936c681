package pkg

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/simp-lee/storefront/internal/domain"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err signals a unique constraint violation.
// The message check covers dialectors that do not translate driver errors to
// gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}

// CreateError translates a failed insert of the named resource: a unique
// violation becomes AlreadyExists, anything else a DatabaseError.
func CreateError(resource string, err error) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return domain.AlreadyExists(resource, err)
	}
	return domain.DatabaseError(err)
}
