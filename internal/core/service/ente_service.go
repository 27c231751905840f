package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cgpe/repopa/internal/core/domain"
	"github.com/cgpe/repopa/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// EnteService implements registry CRUD. Mutations re-check authorization
// against the session carried in the input DTO, independent of the route
// middleware.
type EnteService struct {
	repo   ports.EnteRepository
	folios ports.FolioSequencer
	log    zerolog.Logger
	now    func() time.Time
}

func NewEnteService(repo ports.EnteRepository, folios ports.FolioSequencer, log zerolog.Logger) *EnteService {
	return &EnteService{repo: repo, folios: folios, log: log, now: time.Now}
}

func (s *EnteService) CreateEnte(ctx context.Context, in ports.CreateEnteInput) (*domain.Ente, error) {
	if err := domain.Authorize(in.Session, s.now(), domain.RoleAdmin, domain.RoleCaptura); err != nil {
		return nil, err
	}

	tipo := domain.TipoEnte(in.Tipo)
	if !domain.ValidTipo(tipo) {
		return nil, fmt.Errorf("create ente: unknown tipo %q", in.Tipo)
	}

	now := s.now().UTC()
	folio, err := s.nextFolio(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("create ente: %w", err)
	}

	ente := &domain.Ente{
		Folio:          folio,
		Nombre:         in.Nombre,
		Tipo:           tipo,
		Sector:         in.Sector,
		Integrantes:    toIntegrantes(in.Integrantes),
		Representantes: toRepresentantes(in.Representantes),
		MarcoNormativo: toDocumentos(in.MarcoNormativo),
		Activo:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, ente); err != nil {
		s.log.Error().Err(err).Str("folio", folio).Msg("failed to create ente")
		return nil, err
	}

	s.log.Info().Str("folio", folio).Str("tipo", in.Tipo).
		Str("actor", in.Session.Subject).Msg("ente created")
	return ente, nil
}

func (s *EnteService) GetEnte(ctx context.Context, sess *domain.Session, folio string) (*domain.Ente, error) {
	if err := domain.Authorize(sess, s.now(), domain.RoleAdmin, domain.RoleCaptura, domain.RoleConsulta); err != nil {
		return nil, err
	}
	return s.repo.FindByFolio(ctx, folio)
}

func (s *EnteService) UpdateEnte(ctx context.Context, in ports.UpdateEnteInput) (*domain.Ente, error) {
	if err := domain.Authorize(in.Session, s.now(), domain.RoleAdmin, domain.RoleCaptura); err != nil {
		return nil, err
	}

	ente, err := s.repo.FindByFolio(ctx, in.Folio)
	if err != nil {
		return nil, err
	}

	tipo := domain.TipoEnte(in.Tipo)
	if !domain.ValidTipo(tipo) {
		return nil, fmt.Errorf("update ente: unknown tipo %q", in.Tipo)
	}

	// PUT is a full replacement: the input carries the entire desired
	// state, lists included. Folio, activo, and created_at are the only
	// fields that survive from the stored document.
	ente.Tipo = tipo
	ente.Nombre = in.Nombre
	ente.Sector = in.Sector
	ente.Integrantes = toIntegrantes(in.Integrantes)
	ente.Representantes = toRepresentantes(in.Representantes)
	ente.MarcoNormativo = toDocumentos(in.MarcoNormativo)
	ente.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, ente); err != nil {
		return nil, err
	}

	s.log.Info().Str("folio", in.Folio).Str("actor", in.Session.Subject).Msg("ente updated")
	return ente, nil
}

// DeleteEnte soft-deletes: deletion is ADMIN only, CAPTURA is denied here
// even though it may create and update.
func (s *EnteService) DeleteEnte(ctx context.Context, sess *domain.Session, folio string) error {
	if err := domain.Authorize(sess, s.now(), domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.repo.Deactivate(ctx, folio); err != nil {
		return err
	}
	s.log.Info().Str("folio", folio).Str("actor", sess.Subject).Msg("ente deactivated")
	return nil
}

func (s *EnteService) ListEntes(ctx context.Context, in ports.ListEntesInput) (*ports.ListEntesResult, error) {
	if err := domain.Authorize(in.Session, s.now(), domain.RoleAdmin, domain.RoleCaptura, domain.RoleConsulta); err != nil {
		return nil, err
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListEntesFilter{
		Tipo:   in.Tipo,
		Sector: in.Sector,
		Search: in.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return &ports.ListEntesResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// nextFolio assigns the next file number, format REPOPA/<year>/<6-digit seq>.
func (s *EnteService) nextFolio(ctx context.Context, now time.Time) (string, error) {
	seq, err := s.folios.Next(ctx, now.Year())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("REPOPA/%d/%06d", now.Year(), seq), nil
}

func toIntegrantes(in []ports.IntegranteInput) []domain.Integrante {
	out := make([]domain.Integrante, len(in))
	for i, m := range in {
		out[i] = domain.Integrante{Nombre: m.Nombre, Cargo: m.Cargo, Email: m.Email}
	}
	return out
}

func toRepresentantes(in []ports.RepresentanteInput) []domain.Representante {
	out := make([]domain.Representante, len(in))
	for i, r := range in {
		out[i] = domain.Representante{Nombre: r.Nombre, Caracter: r.Caracter, Instrumento: r.Instrumento}
	}
	return out
}

func toDocumentos(in []ports.DocumentoInput) []domain.Documento {
	out := make([]domain.Documento, len(in))
	for i, d := range in {
		out[i] = domain.Documento{Titulo: d.Titulo, Tipo: d.Tipo, PublicadoEn: d.PublicadoEn}
	}
	return out
}
