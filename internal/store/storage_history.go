// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-qr-keeper/internal/codec"
	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// historyStorage is the default implementation of [HistoryStorage]. It
// delegates table access to a [HistoryRepository], keeps the history within
// capacity and returns results with their Fields re-derived.
type historyStorage struct {
	repository  HistoryRepository
	fileStorage HistoryFileStorage
	capacity    int
	logger      *logger.Logger
}

func NewHistoryStorage(repository HistoryRepository, cfg config.History, logger *logger.Logger) HistoryStorage {
	logger.Debug().Int("capacity", cfg.Capacity).Msg("creating history storage")

	return &historyStorage{
		repository:  repository,
		fileStorage: NewHistoryFileStorage(),
		capacity:    cfg.Capacity,
		logger:      logger,
	}
}

// Append stores results and evicts the oldest entries beyond capacity.
func (h *historyStorage) Append(ctx context.Context, results ...models.ClassifiedResult) error {
	if err := h.repository.SaveResults(ctx, results...); err != nil {
		return err
	}

	_, err := h.Prune(ctx)
	return err
}

func (h *historyStorage) Get(ctx context.Context, id int64) (models.ClassifiedResult, error) {
	r, err := h.repository.GetResult(ctx, id)
	if err != nil {
		return models.ClassifiedResult{}, err
	}
	return codec.Rehydrate(r), nil
}

func (h *historyStorage) List(ctx context.Context, filter models.HistoryFilter) ([]models.ClassifiedResult, error) {
	results, err := h.repository.ListResults(ctx, filter)
	if err != nil {
		return nil, err
	}

	for i := range results {
		results[i] = codec.Rehydrate(results[i])
	}
	return results, nil
}

func (h *historyStorage) Clear(ctx context.Context) error {
	return h.repository.DeleteAll(ctx)
}

func (h *historyStorage) Prune(ctx context.Context) (int64, error) {
	evicted, err := h.repository.Prune(ctx, h.capacity)
	if err != nil {
		return 0, err
	}

	if evicted > 0 {
		logger.FromContext(ctx).Debug().
			Str("func", "historyStorage.Prune").
			Int64("evicted", evicted).
			Int("capacity", h.capacity).
			Msg("evicted oldest history entries")
	}
	return evicted, nil
}

func (h *historyStorage) LastID(ctx context.Context) (int64, error) {
	return h.repository.LastID(ctx)
}

// Export writes the whole history, newest first, in the JSON history format.
func (h *historyStorage) Export(ctx context.Context, w io.Writer) error {
	results, err := h.repository.ListResults(ctx, models.HistoryFilter{})
	if err != nil {
		return err
	}
	return h.fileStorage.Export(ctx, w, results...)
}

// Import appends the entries of a JSON history file and returns how many
// were read. The capacity bound applies afterwards as usual.
func (h *historyStorage) Import(ctx context.Context, r io.Reader) (int, error) {
	results, err := h.fileStorage.Import(ctx, r)
	if err != nil {
		return 0, err
	}

	if err := h.Append(ctx, results...); err != nil {
		return 0, fmt.Errorf("error saving imported history: %w", err)
	}
	return len(results), nil
}
