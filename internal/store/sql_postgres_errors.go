package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the retry loop whether a failed statement may
// succeed on a later attempt.
type ErrorClassification int

const (
	// NonRetryable is the default for anything not known to be transient.
	NonRetryable ErrorClassification = iota
	// Retryable marks lost connections, deadlocks and serialization failures.
	Retryable
)

// retryablePgCodes lists the SQLSTATE codes worth another attempt. Every
// other code, constraint violations included, fails immediately.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.TooManyConnections:     {},
	pgerrcode.CannotConnectNow:       {},
}

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// *pgconn.PgError values produced by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code, ok := pgCode(err)
	if !ok {
		return NonRetryable
	}
	if _, retry := retryablePgCodes[code]; retry {
		return Retryable
	}
	return NonRetryable
}

// IsUniqueViolation reports SQLSTATE 23505 anywhere in err's chain.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	code, ok := pgCode(err)
	return ok && code == pgerrcode.UniqueViolation
}

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return "", false
	}
	return pgErr.Code, true
}
