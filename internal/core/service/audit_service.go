package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cgpe/repopa/internal/core/domain"
	"github.com/cgpe/repopa/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewAuditService returns the bitácora writer invoked by the dispatcher
// workers.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log, now: time.Now}
}

func (s *auditService) Record(ctx context.Context, in ports.AuditEntryInput) error {
	entry := &domain.AuditEntry{
		Folio:     in.Folio,
		Accion:    in.Accion,
		Actor:     in.Actor,
		Detalle:   in.Detalle,
		Timestamp: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}

	s.log.Debug().Str("folio", in.Folio).Str("accion", in.Accion).Msg("audit entry recorded")
	return nil
}
