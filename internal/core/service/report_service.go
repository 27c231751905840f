package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/cgpe/repopa/internal/core/domain"
	"github.com/cgpe/repopa/internal/core/ports"
)

var csvHeader = []string{
	"folio", "nombre", "tipo", "sector",
	"integrantes", "representantes", "documentos", "apoderados", "creado",
}

// ReportService assembles the multi-collection entes export.
type ReportService struct {
	enteRepo  ports.EnteRepository
	poderRepo ports.PoderRepository
	log       zerolog.Logger
	now       func() time.Time
}

func NewReportService(enteRepo ports.EnteRepository, poderRepo ports.PoderRepository, log zerolog.Logger) *ReportService {
	return &ReportService{enteRepo: enteRepo, poderRepo: poderRepo, log: log, now: time.Now}
}

// EntesCSV renders one row per active ente with the apoderado count joined
// in from the poderes collection. Any role may export; it is a pure read.
func (s *ReportService) EntesCSV(ctx context.Context, sess *domain.Session) ([]byte, error) {
	if err := domain.Authorize(sess, s.now(), domain.RoleAdmin, domain.RoleCaptura, domain.RoleConsulta); err != nil {
		return nil, err
	}

	// Page through the whole registry: the export is one row per active
	// ente, never a truncated page.
	var entes []*domain.Ente
	filter := ports.ListEntesFilter{Page: 1, Limit: maxPageLimit}
	for {
		page, total, err := s.enteRepo.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("entes report: %w", err)
		}
		entes = append(entes, page...)
		if len(page) == 0 || int64(len(entes)) >= total {
			break
		}
		filter.Page++
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, e := range entes {
		apoderados := 0
		if p, err := s.poderRepo.FindByFolio(ctx, e.Folio); err == nil {
			apoderados = len(p.Apoderados)
		}
		row := []string{
			e.Folio,
			e.Nombre,
			string(e.Tipo),
			e.Sector,
			strconv.Itoa(len(e.Integrantes)),
			strconv.Itoa(len(e.Representantes)),
			strconv.Itoa(len(e.MarcoNormativo)),
			strconv.Itoa(apoderados),
			e.CreatedAt.UTC().Format("2006-01-02"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	s.log.Info().Int("rows", len(entes)).Str("actor", sess.Subject).Msg("entes report rendered")
	return buf.Bytes(), nil
}
