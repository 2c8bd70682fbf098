package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/migrations"
)

const (
	maxRetries       = 3
	retryBaseBackoff = 50 * time.Millisecond
)

// ErrorClassificator decides whether a failed statement is worth repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// statementBuilder returns a squirrel builder with the dialect's placeholders.
func (db *DB) statementBuilder() sq.StatementBuilderType {
	return statementBuilder(db.dialect)
}

// withRetry runs fn and repeats it with exponential backoff while the error
// classificator reports the failure as Retryable.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBaseBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "DB.withRetry").
				Msg("retryable database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
