package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cgpe/repopa/internal/core/domain"
	"github.com/cgpe/repopa/internal/core/ports"
)

type stubEnteRepo struct {
	entes   map[string]*domain.Ente
	updates int
}

func newStubEnteRepo() *stubEnteRepo {
	return &stubEnteRepo{entes: make(map[string]*domain.Ente)}
}

func (r *stubEnteRepo) Create(_ context.Context, e *domain.Ente) error {
	if _, exists := r.entes[e.Folio]; exists {
		return domain.ErrDuplicateEnte
	}
	clone := *e
	r.entes[e.Folio] = &clone
	return nil
}

func (r *stubEnteRepo) FindByFolio(_ context.Context, folio string) (*domain.Ente, error) {
	e, ok := r.entes[folio]
	if !ok || !e.Activo {
		return nil, domain.ErrEnteNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEnteRepo) Update(_ context.Context, e *domain.Ente) error {
	if _, ok := r.entes[e.Folio]; !ok {
		return domain.ErrEnteNotFound
	}
	clone := *e
	r.entes[e.Folio] = &clone
	r.updates++
	return nil
}

func (r *stubEnteRepo) Deactivate(_ context.Context, folio string) error {
	e, ok := r.entes[folio]
	if !ok || !e.Activo {
		return domain.ErrEnteNotFound
	}
	e.Activo = false
	return nil
}

func (r *stubEnteRepo) List(_ context.Context, filter ports.ListEntesFilter) ([]*domain.Ente, int64, error) {
	var all []*domain.Ente
	for _, e := range r.entes {
		if !e.Activo {
			continue
		}
		if filter.Tipo != "" && string(e.Tipo) != filter.Tipo {
			continue
		}
		clone := *e
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Folio < all[j].Folio })
	total := int64(len(all))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

type stubSequencer struct {
	seq map[int]int64
}

func (s *stubSequencer) Next(_ context.Context, year int) (int64, error) {
	if s.seq == nil {
		s.seq = make(map[int]int64)
	}
	s.seq[year]++
	return s.seq[year], nil
}

func sessionFor(role domain.Role) *domain.Session {
	return &domain.Session{Subject: "u-" + string(role), Role: role, ExpiresAt: time.Now().Add(time.Hour)}
}

func newEnteService(repo *stubEnteRepo) *EnteService {
	return NewEnteService(repo, &stubSequencer{}, zerolog.Nop())
}

func TestEnteService_CreateEnte_AssignsSequentialFolios(t *testing.T) {
	repo := newStubEnteRepo()
	svc := newEnteService(repo)
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }

	for i := 1; i <= 3; i++ {
		ente, err := svc.CreateEnte(context.Background(), ports.CreateEnteInput{
			Nombre:  fmt.Sprintf("Organismo %d", i),
			Tipo:    "ORGANISMO",
			Sector:  "salud",
			Session: sessionFor(domain.RoleCaptura),
		})
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
		want := fmt.Sprintf("REPOPA/2026/%06d", i)
		if ente.Folio != want {
			t.Fatalf("expected folio %s, got %s", want, ente.Folio)
		}
		if !ente.Activo {
			t.Fatalf("new ente should be active")
		}
	}
}

func TestEnteService_CreateEnte_RejectsUnknownTipo(t *testing.T) {
	svc := newEnteService(newStubEnteRepo())

	_, err := svc.CreateEnte(context.Background(), ports.CreateEnteInput{
		Nombre:  "X",
		Tipo:    "SINDICATO",
		Session: sessionFor(domain.RoleAdmin),
	})
	if err == nil {
		t.Fatalf("expected error for unknown tipo")
	}
}

// The service re-checks the role itself: a read-only session is denied even
// when the call never went through the route middleware.
func TestEnteService_CreateEnte_ConsultaDenied(t *testing.T) {
	svc := newEnteService(newStubEnteRepo())

	_, err := svc.CreateEnte(context.Background(), ports.CreateEnteInput{
		Nombre:  "X",
		Tipo:    "ORGANISMO",
		Session: sessionFor(domain.RoleConsulta),
	})
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestEnteService_CreateEnte_NoSessionDenied(t *testing.T) {
	svc := newEnteService(newStubEnteRepo())

	_, err := svc.CreateEnte(context.Background(), ports.CreateEnteInput{
		Nombre: "X",
		Tipo:   "ORGANISMO",
	})
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestEnteService_UpdateEnte_ReplacesFullState(t *testing.T) {
	repo := newStubEnteRepo()
	svc := newEnteService(repo)

	created, err := svc.CreateEnte(context.Background(), ports.CreateEnteInput{
		Nombre: "Antes",
		Tipo:   "ORGANISMO",
		Sector: "salud",
		Integrantes: []ports.IntegranteInput{
			{Nombre: "A", Cargo: "Presidente"},
			{Nombre: "B", Cargo: "Vocal"},
		},
		Session: sessionFor(domain.RoleCaptura),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateEnte(context.Background(), ports.UpdateEnteInput{
		Folio:  created.Folio,
		Nombre: "Despues",
		Tipo:   "EMPRESA",
		Sector: "energia",
		Integrantes: []ports.IntegranteInput{
			{Nombre: "C", Cargo: "Presidente"},
		},
		Session: sessionFor(domain.RoleCaptura),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Nombre != "Despues" || updated.Tipo != domain.TipoEmpresa || updated.Sector != "energia" {
		t.Fatalf("update not applied: %+v", updated)
	}
	// PUT carries the entire desired state: the stored lists are the new
	// lists, not a merge with the old ones.
	if len(updated.Integrantes) != 1 || updated.Integrantes[0].Nombre != "C" {
		t.Fatalf("integrantes not replaced: %+v", updated.Integrantes)
	}
	if updated.Folio != created.Folio || !updated.Activo {
		t.Fatalf("folio and activo must survive the replacement: %+v", updated)
	}

	stored, err := svc.GetEnte(context.Background(), sessionFor(domain.RoleConsulta), created.Folio)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(stored.Integrantes) != 1 {
		t.Fatalf("stored integrantes not replaced: %+v", stored.Integrantes)
	}
}

func TestEnteService_UpdateEnte_OmittedListsClear(t *testing.T) {
	repo := newStubEnteRepo()
	svc := newEnteService(repo)

	created, err := svc.CreateEnte(context.Background(), ports.CreateEnteInput{
		Nombre: "X",
		Tipo:   "ORGANISMO",
		Sector: "salud",
		Representantes: []ports.RepresentanteInput{
			{Nombre: "Lic. Perez", Caracter: "Apoderado"},
		},
		Session: sessionFor(domain.RoleAdmin),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateEnte(context.Background(), ports.UpdateEnteInput{
		Folio:   created.Folio,
		Nombre:  "X",
		Tipo:    "ORGANISMO",
		Sector:  "salud",
		Session: sessionFor(domain.RoleAdmin),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(updated.Representantes) != 0 {
		t.Fatalf("omitted list should clear the stored one, got %+v", updated.Representantes)
	}
}

func TestEnteService_UpdateEnte_UnknownFolio(t *testing.T) {
	svc := newEnteService(newStubEnteRepo())

	_, err := svc.UpdateEnte(context.Background(), ports.UpdateEnteInput{
		Folio:   "REPOPA/2026/999999",
		Nombre:  "X",
		Session: sessionFor(domain.RoleAdmin),
	})
	if !errors.Is(err, domain.ErrEnteNotFound) {
		t.Fatalf("expected ErrEnteNotFound, got %v", err)
	}
}

func TestEnteService_DeleteEnte_AdminOnly(t *testing.T) {
	repo := newStubEnteRepo()
	svc := newEnteService(repo)

	created, err := svc.CreateEnte(context.Background(), ports.CreateEnteInput{
		Nombre:  "X",
		Tipo:    "FIDEICOMISO",
		Session: sessionFor(domain.RoleAdmin),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// CAPTURA may create but not delete.
	if err := svc.DeleteEnte(context.Background(), sessionFor(domain.RoleCaptura), created.Folio); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for captura, got %v", err)
	}

	if err := svc.DeleteEnte(context.Background(), sessionFor(domain.RoleAdmin), created.Folio); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}

	// Soft delete: the row is hidden, not gone.
	if _, err := svc.GetEnte(context.Background(), sessionFor(domain.RoleAdmin), created.Folio); !errors.Is(err, domain.ErrEnteNotFound) {
		t.Fatalf("deactivated ente should not be readable, got %v", err)
	}
	if repo.entes[created.Folio] == nil {
		t.Fatalf("soft delete must keep the stored document")
	}
}

func TestEnteService_ListEntes_Pagination(t *testing.T) {
	repo := newStubEnteRepo()
	svc := newEnteService(repo)

	for i := 0; i < 5; i++ {
		if _, err := svc.CreateEnte(context.Background(), ports.CreateEnteInput{
			Nombre:  fmt.Sprintf("E%d", i),
			Tipo:    "ORGANISMO",
			Session: sessionFor(domain.RoleAdmin),
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	res, err := svc.ListEntes(context.Background(), ports.ListEntesInput{
		Page:    1,
		Limit:   2,
		Session: sessionFor(domain.RoleConsulta),
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Total != 5 || len(res.Items) != 2 || res.TotalPages != 3 {
		t.Fatalf("unexpected page: total=%d items=%d pages=%d", res.Total, len(res.Items), res.TotalPages)
	}
}

func TestEnteService_ListEntes_ClampsLimits(t *testing.T) {
	svc := newEnteService(newStubEnteRepo())

	res, err := svc.ListEntes(context.Background(), ports.ListEntesInput{
		Page:    0,
		Limit:   10000,
		Session: sessionFor(domain.RoleConsulta),
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Page != 1 || res.Limit != maxPageLimit {
		t.Fatalf("limits not clamped: page=%d limit=%d", res.Page, res.Limit)
	}
}
