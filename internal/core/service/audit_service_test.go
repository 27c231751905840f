package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cgpe/repopa/internal/core/domain"
	"github.com/cgpe/repopa/internal/core/ports"
)

type stubAuditRepo struct {
	entries []*domain.AuditEntry
	err     error
}

func (r *stubAuditRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, entry)
	return nil
}

func TestAuditService_Record(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop()).(*auditService)
	stamp := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return stamp }

	err := svc.Record(context.Background(), ports.AuditEntryInput{
		Folio:  "REPOPA/2026/000001",
		Accion: "CREATE",
		Actor:  "u1",
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	got := repo.entries[0]
	if got.Accion != "CREATE" || !got.Timestamp.Equal(stamp) {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestAuditService_Record_WrapsRepoError(t *testing.T) {
	repoErr := errors.New("insert failed")
	svc := NewAuditService(&stubAuditRepo{err: repoErr}, zerolog.Nop())

	err := svc.Record(context.Background(), ports.AuditEntryInput{Folio: "REPOPA/2026/000001"})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
