package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// historyRepository is the SQL implementation of [HistoryRepository]. The
// same code serves PostgreSQL and SQLite; only the placeholder format of the
// embedded [DB] differs.
type historyRepository struct {
	*DB
	logger *logger.Logger
}

func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveResults inserts results in a single transaction. Results whose id is
// already stored are skipped.
func (h *historyRepository) SaveResults(ctx context.Context, results ...models.ClassifiedResult) error {
	log := logger.FromContext(ctx)

	if len(results) == 0 {
		return nil
	}

	query, args, err := buildInsertResultsQuery(h.statementBuilder(), results...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.SaveResults").
			Int("results", len(results)).
			Msg("failed to create query")
		return err
	}

	return h.withRetry(ctx, func(ctx context.Context) error {
		tx, err := h.DB.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).Str("func", "historyRepository.SaveResults").Msg("failed to begin transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "historyRepository.SaveResults").
				Int("results", len(results)).
				Msg("failed to insert results")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err = tx.Commit(); err != nil {
			log.Err(err).Str("func", "historyRepository.SaveResults").Msg("failed to commit transaction")
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}

		return nil
	})
}

func (h *historyRepository) GetResult(ctx context.Context, id int64) (models.ClassifiedResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectResultQuery(h.statementBuilder(), id)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.GetResult").Int64("id", id).Msg("failed to create query")
		return models.ClassifiedResult{}, err
	}

	var result models.ClassifiedResult
	err = h.withRetry(ctx, func(ctx context.Context) error {
		return h.DB.QueryRowContext(ctx, query, args...).
			Scan(&result.ID, &result.Data, &result.Kind, &result.CapturedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.ClassifiedResult{}, ErrResultNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "historyRepository.GetResult").Int64("id", id).Msg("failed to scan history row")
		return models.ClassifiedResult{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return result, nil
}

// ListResults returns results newest first.
func (h *historyRepository) ListResults(ctx context.Context, filter models.HistoryFilter) ([]models.ClassifiedResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListResultsQuery(h.statementBuilder(), filter)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.ListResults").Msg("failed to create query")
		return nil, err
	}

	var results []models.ClassifiedResult
	err = h.withRetry(ctx, func(ctx context.Context) error {
		results, err = h.queryResults(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.ListResults").
			Str("kind", filter.Kind.String()).
			Msg("failed to list history")
		return nil, err
	}

	return results, nil
}

func (h *historyRepository) queryResults(ctx context.Context, query string, args ...any) ([]models.ClassifiedResult, error) {
	rows, err := h.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.ClassifiedResult, 0, 16)
	for rows.Next() {
		var r models.ClassifiedResult
		if err := rows.Scan(&r.ID, &r.Data, &r.Kind, &r.CapturedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (h *historyRepository) DeleteAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAllQuery(h.statementBuilder())
	if err != nil {
		log.Err(err).Str("func", "historyRepository.DeleteAll").Msg("failed to create query")
		return err
	}

	err = h.withRetry(ctx, func(ctx context.Context) error {
		_, err := h.DB.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "historyRepository.DeleteAll").Msg("failed to clear history")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (h *historyRepository) Prune(ctx context.Context, capacity int) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPruneQuery(h.statementBuilder(), capacity)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.Prune").Msg("failed to create query")
		return 0, err
	}

	var evicted int64
	err = h.withRetry(ctx, func(ctx context.Context) error {
		res, err := h.DB.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		evicted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.Prune").
			Int("capacity", capacity).
			Msg("failed to prune history")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return evicted, nil
}

func (h *historyRepository) LastID(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLastIDQuery(h.statementBuilder())
	if err != nil {
		log.Err(err).Str("func", "historyRepository.LastID").Msg("failed to create query")
		return 0, err
	}

	var id int64
	err = h.withRetry(ctx, func(ctx context.Context) error {
		return h.DB.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		log.Err(err).Str("func", "historyRepository.LastID").Msg("failed to read last id")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return id, nil
}
