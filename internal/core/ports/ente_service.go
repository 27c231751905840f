package ports

import (
	"context"
	"time"

	"github.com/cgpe/repopa/internal/core/domain"
)

// IntegranteInput holds one governing-body member.
type IntegranteInput struct {
	Nombre string
	Cargo  string
	Email  string
}

// RepresentanteInput holds one legal representative.
type RepresentanteInput struct {
	Nombre      string
	Caracter    string
	Instrumento string
}

// DocumentoInput holds one marco normativo document reference.
type DocumentoInput struct {
	Titulo      string
	Tipo        string
	PublicadoEn time.Time
}

// CreateEnteInput carries all data needed to register a new ente.
type CreateEnteInput struct {
	Nombre         string
	Tipo           string
	Sector         string
	Integrantes    []IntegranteInput
	Representantes []RepresentanteInput
	MarcoNormativo []DocumentoInput
	// Session of the acting user; the service re-checks authorization
	// regardless of what the route layer already enforced.
	Session *domain.Session
}

// UpdateEnteInput mirrors CreateEnteInput for an existing folio.
type UpdateEnteInput struct {
	Folio          string
	Nombre         string
	Tipo           string
	Sector         string
	Integrantes    []IntegranteInput
	Representantes []RepresentanteInput
	MarcoNormativo []DocumentoInput
	Session        *domain.Session
}

// ListEntesInput carries list parameters plus the acting session.
type ListEntesInput struct {
	Tipo    string
	Sector  string
	Search  string
	Page    int
	Limit   int
	Session *domain.Session
}

// ListEntesResult is returned by ListEntes.
type ListEntesResult struct {
	Items      []*domain.Ente
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// EnteService defines use-case operations for the registry.
type EnteService interface {
	CreateEnte(ctx context.Context, in CreateEnteInput) (*domain.Ente, error)
	GetEnte(ctx context.Context, sess *domain.Session, folio string) (*domain.Ente, error)
	UpdateEnte(ctx context.Context, in UpdateEnteInput) (*domain.Ente, error)
	DeleteEnte(ctx context.Context, sess *domain.Session, folio string) error
	ListEntes(ctx context.Context, in ListEntesInput) (*ListEntesResult, error)
}

// ApoderadoInput holds one attorney-in-fact with granted powers.
type ApoderadoInput struct {
	Nombre     string
	Cargo      string
	Facultades []string
}

// ReplacePoderesInput replaces the full powers set for one ente.
type ReplacePoderesInput struct {
	Folio      string
	Apoderados []ApoderadoInput
	OtorgadoEn time.Time
	Session    *domain.Session
}

// PoderService manages powers of attorney.
type PoderService interface {
	ReplacePoderes(ctx context.Context, in ReplacePoderesInput) (*domain.Poderes, error)
	GetPoderes(ctx context.Context, sess *domain.Session, folio string) (*domain.Poderes, error)
}

// ReportService reshapes registry rows into export payloads.
type ReportService interface {
	// EntesCSV writes the entes report (one row per ente, poderes count
	// joined in) and returns the rendered bytes.
	EntesCSV(ctx context.Context, sess *domain.Session) ([]byte, error)
}

// AuditEntryInput is the DTO handed to the audit dispatcher.
type AuditEntryInput struct {
	Folio   string
	Accion  string
	Actor   string
	Detalle string
}

// AuditService persists bitácora entries delivered by the dispatcher.
type AuditService interface {
	Record(ctx context.Context, in AuditEntryInput) error
}
