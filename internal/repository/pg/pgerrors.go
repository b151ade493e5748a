package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

type ErrorClassification int

const (
	NonRetriable ErrorClassification = iota
	Retriable

	ErrUniqueViolationCode = "23505"
)

// PostgresErrorClassifier understands errors from both pgx and lib/pq.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code, ok := sqlState(err)
	if !ok {
		return NonRetriable
	}

	return classifyCode(code)
}

func sqlState(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}

	return "", false
}

func isUniqueViolation(err error) bool {
	code, ok := sqlState(err)
	return ok && code == ErrUniqueViolationCode
}

// https://www.postgresql.org/docs/current/errcodes-appendix.html
func classifyCode(code string) ErrorClassification {
	switch code {
	// Класс 08 - ошибки соединения
	case "08000", "08001", "08003", "08004", "08006", "08007":
		return Retriable

	// Класс 40 - откат транзакции
	case "40000", "40001", "40P01":
		return Retriable

	// Класс 57 - ошибка оператора
	case "57P01", "57P03":
		return Retriable
	}

	// По умолчанию считаем ошибку неповторяемой
	return NonRetriable
}
