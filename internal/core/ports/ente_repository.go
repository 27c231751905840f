package ports

import (
	"context"

	"github.com/cgpe/repopa/internal/core/domain"
)

// ListEntesFilter carries query parameters for listing entes.
type ListEntesFilter struct {
	Tipo   string // optional: filter by tipo
	Sector string // optional: filter by sector
	Search string // optional: partial match on nombre or folio
	Page   int    // 1-based
	Limit  int    // max rows per page (capped by service)
}

// EnteRepository defines persistence operations for entes.
type EnteRepository interface {
	Create(ctx context.Context, e *domain.Ente) error
	// FindByFolio retrieves an active ente by folio.
	FindByFolio(ctx context.Context, folio string) (*domain.Ente, error)
	Update(ctx context.Context, e *domain.Ente) error
	// Deactivate soft-deletes the ente (activo=false).
	Deactivate(ctx context.Context, folio string) error
	// List returns a page of active entes matching filter and the total count.
	List(ctx context.Context, filter ListEntesFilter) ([]*domain.Ente, int64, error)
}

// PoderRepository stores the powers-of-attorney document per ente.
type PoderRepository interface {
	// Replace persists the full apoderados set for an ente in one write.
	Replace(ctx context.Context, p *domain.Poderes) error
	FindByFolio(ctx context.Context, folio string) (*domain.Poderes, error)
}

// FolioSequencer hands out monotonically increasing folio numbers per year.
type FolioSequencer interface {
	Next(ctx context.Context, year int) (int64, error)
}

// AuditRepository appends bitácora entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}
