// Package jobs contains the background workers that run off the request path.
package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/chkwon/redpen-app/internal/core"
	"github.com/chkwon/redpen-app/internal/storage"
)

// recorder implements core.DeliveryRecorder with a pool of worker goroutines
// so the webhook handler never waits on the database.
type recorder struct {
	store      storage.DeliveryStore
	queue      chan *core.Delivery
	maxWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
	logger     *slog.Logger
}

// NewRecorder initializes a delivery recorder with a worker pool.
// If maxWorkers is 0 or negative, it defaults to 1.
func NewRecorder(store storage.DeliveryStore, maxWorkers int, logger *slog.Logger) core.DeliveryRecorder {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	r := &recorder{
		store:      store,
		maxWorkers: maxWorkers,
		queue:      make(chan *core.Delivery, 100),
		logger:     logger,
	}
	r.startWorkers()
	return r
}

func (r *recorder) startWorkers() {
	for i := range r.maxWorkers {
		r.wg.Add(1)
		go r.startWorker(i)
	}
}

// startWorker persists records from the queue until it's closed.
func (r *recorder) startWorker(workerID int) {
	defer r.wg.Done()
	r.logger.Debug("starting delivery recorder worker", "id", workerID)

	for d := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := r.store.SaveDelivery(ctx, d); err != nil {
			r.logger.Error("failed to persist delivery record",
				"repo", d.RepoFullName, "outcome", d.Outcome, "error", err)
		}
		cancel()
	}

	r.logger.Debug("shutting down delivery recorder worker", "id", workerID)
}

// Record queues a delivery record. A full queue drops the record with a
// warning; the audit log must never apply backpressure to webhook handling.
func (r *recorder) Record(_ context.Context, d *core.Delivery) {
	select {
	case r.queue <- d:
	default:
		r.logger.Warn("delivery record queue is full, dropping record",
			"repo", d.RepoFullName, "outcome", d.Outcome)
	}
}

// Stop drains the queue and waits for all workers to finish. It is safe to
// call more than once.
func (r *recorder) Stop() {
	r.stopOnce.Do(func() {
		close(r.queue)
		r.wg.Wait()
	})
}

// noopRecorder is used when no delivery database is configured.
type noopRecorder struct{}

func (noopRecorder) Record(context.Context, *core.Delivery) {}
func (noopRecorder) Stop()                                  {}

// NewNoopRecorder returns a recorder that discards every record.
func NewNoopRecorder() core.DeliveryRecorder {
	return noopRecorder{}
}
