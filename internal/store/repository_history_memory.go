package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-qr-keeper/models"
)

// memoryHistoryRepository keeps history in process memory. The server uses
// it when no database DSN is configured.
type memoryHistoryRepository struct {
	mu      sync.RWMutex
	results map[int64]models.ClassifiedResult
}

func NewMemoryHistoryRepository() HistoryRepository {
	return &memoryHistoryRepository{
		results: make(map[int64]models.ClassifiedResult),
	}
}

func (m *memoryHistoryRepository) SaveResults(ctx context.Context, results ...models.ClassifiedResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range results {
		if _, ok := m.results[r.ID]; ok {
			continue
		}
		r.Fields = nil
		m.results[r.ID] = r
	}

	return nil
}

func (m *memoryHistoryRepository) GetResult(ctx context.Context, id int64) (models.ClassifiedResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.results[id]
	if !ok {
		return models.ClassifiedResult{}, ErrResultNotFound
	}
	return r, nil
}

func (m *memoryHistoryRepository) ListResults(ctx context.Context, filter models.HistoryFilter) ([]models.ClassifiedResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]models.ClassifiedResult, 0, len(m.results))
	for _, r := range m.newestFirst() {
		if filter.Kind != "" && r.Kind != filter.Kind {
			continue
		}
		results = append(results, r)
		if filter.Limit > 0 && len(results) == filter.Limit {
			break
		}
	}

	return results, nil
}

func (m *memoryHistoryRepository) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.results)
	return nil
}

func (m *memoryHistoryRepository) Prune(ctx context.Context, capacity int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ordered := m.newestFirst()
	if len(ordered) <= capacity {
		return 0, nil
	}

	for _, r := range ordered[max(capacity, 0):] {
		delete(m.results, r.ID)
	}
	return int64(len(ordered) - max(capacity, 0)), nil
}

func (m *memoryHistoryRepository) LastID(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var last int64
	for id := range m.results {
		last = max(last, id)
	}
	return last, nil
}

// newestFirst orders by captured_at, then id, both descending. Callers hold mu.
func (m *memoryHistoryRepository) newestFirst() []models.ClassifiedResult {
	ordered := make([]models.ClassifiedResult, 0, len(m.results))
	for _, r := range m.results {
		ordered = append(ordered, r)
	}

	slices.SortFunc(ordered, func(a, b models.ClassifiedResult) int {
		if c := b.CapturedAt.Compare(a.CapturedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return ordered
}
