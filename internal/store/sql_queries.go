// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-qr-keeper/migrations"
	"github.com/MKhiriev/go-qr-keeper/models"
)

const historyTable = "scan_history"

var historyColumns = []string{"id", "data", "kind", "captured_at"}

const (
	newestFirstByTime = "captured_at DESC"
	newestFirstByID   = "id DESC"

	pruneCondition = "id NOT IN (SELECT id FROM " + historyTable +
		" ORDER BY " + newestFirstByTime + ", " + newestFirstByID + " LIMIT ?)"

	selectLastID = "COALESCE(MAX(id), 0)"
)

func statementBuilder(dialect string) sq.StatementBuilderType {
	if dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// buildInsertResultsQuery inserts every result in one statement. Already
// stored ids are skipped, so importing the same file twice is harmless.
func buildInsertResultsQuery(b sq.StatementBuilderType, results ...models.ClassifiedResult) (string, []any, error) {
	insert := b.Insert(historyTable).Columns(historyColumns...)
	for _, r := range results {
		insert = insert.Values(r.ID, r.Data, r.Kind.String(), r.CapturedAt.UTC())
	}

	query, args, err := insert.Suffix("ON CONFLICT (id) DO NOTHING").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectResultQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Select(historyColumns...).
		From(historyTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListResultsQuery lists newest first, optionally narrowed by kind and limit.
func buildListResultsQuery(b sq.StatementBuilderType, filter models.HistoryFilter) (string, []any, error) {
	selectBuilder := b.Select(historyColumns...).
		From(historyTable).
		OrderBy(newestFirstByTime, newestFirstByID)

	if filter.Kind != "" {
		selectBuilder = selectBuilder.Where(sq.Eq{"kind": filter.Kind.String()})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteAllQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Delete(historyTable).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildPruneQuery deletes everything but the newest capacity rows.
func buildPruneQuery(b sq.StatementBuilderType, capacity int) (string, []any, error) {
	query, args, err := b.Delete(historyTable).
		Where(pruneCondition, capacity).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildLastIDQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(selectLastID).From(historyTable).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
