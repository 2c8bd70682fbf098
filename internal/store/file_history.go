package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-qr-keeper/internal/codec"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// historyFileStorage reads and writes the JSON history format:
// [{id, data, type, timestamp, typeInfo}]. typeInfo is written for
// compatibility but ignored on import, since it is re-derived from type.
type historyFileStorage struct {
}

func NewHistoryFileStorage() HistoryFileStorage {
	return &historyFileStorage{}
}

func (h *historyFileStorage) Export(ctx context.Context, w io.Writer, results ...models.ClassifiedResult) error {
	entries := make([]models.HistoryEntry, 0, len(results))
	for _, r := range results {
		info := codec.TypeInfoFor(r.Kind)
		entries = append(entries, models.HistoryEntry{
			ID:        r.ID,
			Data:      r.Data,
			Type:      r.Kind,
			Timestamp: r.CapturedAt,
			TypeInfo:  &info,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("error encoding history: %w", err)
	}
	return nil
}

// Import decodes a history file. Entries with an unknown type are
// re-classified from their data; entries without data are dropped.
func (h *historyFileStorage) Import(ctx context.Context, r io.Reader) ([]models.ClassifiedResult, error) {
	var entries []models.HistoryEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHistoryFile, err)
	}

	results := make([]models.ClassifiedResult, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Data) == "" || e.ID <= 0 {
			continue
		}
		results = append(results, codec.Rehydrate(models.ClassifiedResult{
			ID:         e.ID,
			Data:       e.Data,
			Kind:       e.Type,
			CapturedAt: e.Timestamp,
		}))
	}

	return results, nil
}
