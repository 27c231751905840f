package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cgpe/repopa/internal/core/domain"
	"github.com/cgpe/repopa/internal/core/ports"
)

// PoderService manages the powers-of-attorney document per ente. The full
// apoderados set is replaced in a single write, so a failed request leaves
// the previous grant intact.
type PoderService struct {
	enteRepo  ports.EnteRepository
	poderRepo ports.PoderRepository
	log       zerolog.Logger
	now       func() time.Time
}

func NewPoderService(enteRepo ports.EnteRepository, poderRepo ports.PoderRepository, log zerolog.Logger) *PoderService {
	return &PoderService{enteRepo: enteRepo, poderRepo: poderRepo, log: log, now: time.Now}
}

func (s *PoderService) ReplacePoderes(ctx context.Context, in ports.ReplacePoderesInput) (*domain.Poderes, error) {
	if err := domain.Authorize(in.Session, s.now(), domain.RoleAdmin, domain.RoleCaptura); err != nil {
		return nil, err
	}

	// The folio must reference an active ente.
	if _, err := s.enteRepo.FindByFolio(ctx, in.Folio); err != nil {
		return nil, err
	}

	apoderados := make([]domain.Apoderado, len(in.Apoderados))
	for i, a := range in.Apoderados {
		apoderados[i] = domain.Apoderado{Nombre: a.Nombre, Cargo: a.Cargo, Facultades: a.Facultades}
	}

	p := &domain.Poderes{
		EnteFolio:  in.Folio,
		Apoderados: apoderados,
		OtorgadoEn: in.OtorgadoEn,
		UpdatedAt:  s.now().UTC(),
	}

	if err := s.poderRepo.Replace(ctx, p); err != nil {
		s.log.Error().Err(err).Str("folio", in.Folio).Msg("failed to replace poderes")
		return nil, err
	}

	s.log.Info().Str("folio", in.Folio).Int("apoderados", len(apoderados)).
		Str("actor", in.Session.Subject).Msg("poderes replaced")
	return p, nil
}

func (s *PoderService) GetPoderes(ctx context.Context, sess *domain.Session, folio string) (*domain.Poderes, error) {
	if err := domain.Authorize(sess, s.now(), domain.RoleAdmin, domain.RoleCaptura, domain.RoleConsulta); err != nil {
		return nil, err
	}
	return s.poderRepo.FindByFolio(ctx, folio)
}
