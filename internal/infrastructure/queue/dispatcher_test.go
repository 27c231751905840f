package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cgpe/repopa/internal/core/ports"
)

type recordingAuditService struct {
	mu      sync.Mutex
	entries []ports.AuditEntryInput
	err     error
	done    chan struct{}
}

func newRecordingAuditService(expected int) *recordingAuditService {
	return &recordingAuditService{done: make(chan struct{}, expected)}
}

func (s *recordingAuditService) Record(_ context.Context, in ports.AuditEntryInput) error {
	s.mu.Lock()
	s.entries = append(s.entries, in)
	s.mu.Unlock()
	s.done <- struct{}{}
	return s.err
}

func (s *recordingAuditService) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-s.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %d audit writes", n)
		}
	}
}

func TestDispatcher_DeliversEntries(t *testing.T) {
	svc := newRecordingAuditService(3)
	d := NewDispatcher(4, svc, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, folio := range []string{"REPOPA/2026/000001", "REPOPA/2026/000002", "REPOPA/2026/000003"} {
		d.Enqueue(ports.AuditEntryInput{Folio: folio, Accion: "CREATE", Actor: "u1"})
	}
	svc.wait(t, 3)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(svc.entries))
	}
}

// Entries for one folio always land on the same worker, so their relative
// order is preserved.
func TestDispatcher_SameFolioOrdering(t *testing.T) {
	const n = 20
	svc := newRecordingAuditService(n)
	d := NewDispatcher(4, svc, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < n; i++ {
		d.Enqueue(ports.AuditEntryInput{
			Folio:   "REPOPA/2026/000007",
			Accion:  "UPDATE",
			Actor:   "u1",
			Detalle: string(rune('a' + i)),
		})
	}
	svc.wait(t, n)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for i, e := range svc.entries {
		if e.Detalle != string(rune('a'+i)) {
			t.Fatalf("entry %d out of order: %q", i, e.Detalle)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, newRecordingAuditService(0), zerolog.Nop())

	first := d.shardIndex("REPOPA/2026/000123")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("REPOPA/2026/000123"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

// A failing audit write is logged and dropped; later entries still flow.
func TestDispatcher_WriteFailureDoesNotStopWorker(t *testing.T) {
	svc := newRecordingAuditService(2)
	svc.err = errors.New("mongo unavailable")
	d := NewDispatcher(1, svc, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.AuditEntryInput{Folio: "REPOPA/2026/000001", Accion: "CREATE"})
	d.Enqueue(ports.AuditEntryInput{Folio: "REPOPA/2026/000001", Accion: "UPDATE"})
	svc.wait(t, 2)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.entries) != 2 {
		t.Fatalf("worker stopped after failed write: got %d entries", len(svc.entries))
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newRecordingAuditService(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
