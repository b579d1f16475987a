package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html#23505:~:text=foreign_key_violation-,23505,-unique_violation
const PgErrUniqueViolation = "23505"

// IsPgErrorWithCode распознает коды ошибок Postgres за обертками %w.
// Репозиторий оценок через него превращает нарушение уникального индекса
// ratings(booking_id, direction) в доменный конфликт.
func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
