package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
)

const defaultPruneInterval = time.Minute

// historyPruner is the part of store.HistoryStorage the job needs.
type historyPruner interface {
	Prune(ctx context.Context) (int64, error)
}

type historyPruneJob struct {
	history historyPruner
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHistoryPruneJob creates a job that calls history.Prune on a ticker. The
// job is idle until Start is called.
func NewHistoryPruneJob(history historyPruner, logger *logger.Logger) HistoryPruneJob {
	return &historyPruneJob{history: history, logger: logger}
}

// Start implements HistoryPruneJob. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *historyPruneJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPruneInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.history.Prune(jobCtx); err != nil {
					j.logger.Err(err).Str("func", "historyPruneJob.Start").Msg("error pruning history")
				}
			}
		}
	}()
}

// Stop implements HistoryPruneJob. Safe to call when the job is not running.
func (j *historyPruneJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
