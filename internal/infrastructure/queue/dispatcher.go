package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/cgpe/repopa/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes bitácora entries to a fixed set of workers using
// consistent hashing on the ente folio, guaranteeing per-ente ordering of
// audit rows. A failed write is logged and dropped; auditing never fails
// the originating request.
type Dispatcher struct {
	workers []chan ports.AuditEntryInput
	service ports.AuditService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AuditEntryInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuditEntryInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an entry to the worker responsible for its folio.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(entry ports.AuditEntryInput) {
	d.workers[d.shardIndex(entry.Folio)] <- entry
}

// shardIndex maps a folio deterministically to a worker index.
func (d *Dispatcher) shardIndex(folio string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(folio))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AuditEntryInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Record(ctx, entry); err != nil {
				d.log.Error().Err(err).
					Str("folio", entry.Folio).
					Int("worker_id", id).
					Msg("audit write failed")
			}
		}
	}
}
