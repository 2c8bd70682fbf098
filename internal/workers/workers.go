package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-qr-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add registers another worker. It has no effect on already started workers.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type pruneWorker struct {
	job      service.HistoryPruneJob
	interval time.Duration
}

// NewHistoryPruneWorker runs job every interval.
func NewHistoryPruneWorker(job service.HistoryPruneJob, interval time.Duration) Worker {
	return &pruneWorker{job: job, interval: interval}
}

func (p *pruneWorker) Start(ctx context.Context) {
	p.job.Start(ctx, p.interval)
}

func (p *pruneWorker) Stop() {
	p.job.Stop()
}

type periodicWorker struct {
	interval time.Duration
	fn       func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPeriodicWorker calls fn right after Start and then every interval.
func NewPeriodicWorker(interval time.Duration, fn func(ctx context.Context)) Worker {
	return &periodicWorker{interval: interval, fn: fn}
}

func (p *periodicWorker) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.fn(workerCtx)
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				p.fn(workerCtx)
			}
		}
	}()
}

func (p *periodicWorker) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
