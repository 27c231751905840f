package handler

import (
	"github.com/cgpe/repopa/internal/core/domain"
	"github.com/cgpe/repopa/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createEnteRequest, sess *domain.Session) ports.CreateEnteInput {
	return ports.CreateEnteInput{
		Nombre:         req.Nombre,
		Tipo:           req.Tipo,
		Sector:         req.Sector,
		Integrantes:    toIntegranteInputs(req.Integrantes),
		Representantes: toRepresentanteInputs(req.Representantes),
		MarcoNormativo: toDocumentoInputs(req.MarcoNormativo),
		Session:        sess,
	}
}

func toUpdateInput(req updateEnteRequest, folio string, sess *domain.Session) ports.UpdateEnteInput {
	return ports.UpdateEnteInput{
		Folio:          folio,
		Nombre:         req.Nombre,
		Tipo:           req.Tipo,
		Sector:         req.Sector,
		Integrantes:    toIntegranteInputs(req.Integrantes),
		Representantes: toRepresentanteInputs(req.Representantes),
		MarcoNormativo: toDocumentoInputs(req.MarcoNormativo),
		Session:        sess,
	}
}

func toIntegranteInputs(in []integranteRequest) []ports.IntegranteInput {
	out := make([]ports.IntegranteInput, len(in))
	for i, m := range in {
		out[i] = ports.IntegranteInput{Nombre: m.Nombre, Cargo: m.Cargo, Email: m.Email}
	}
	return out
}

func toRepresentanteInputs(in []representanteRequest) []ports.RepresentanteInput {
	out := make([]ports.RepresentanteInput, len(in))
	for i, r := range in {
		out[i] = ports.RepresentanteInput{Nombre: r.Nombre, Caracter: r.Caracter, Instrumento: r.Instrumento}
	}
	return out
}

func toDocumentoInputs(in []documentoRequest) []ports.DocumentoInput {
	out := make([]ports.DocumentoInput, len(in))
	for i, d := range in {
		out[i] = ports.DocumentoInput{Titulo: d.Titulo, Tipo: d.Tipo, PublicadoEn: d.PublicadoEn}
	}
	return out
}

// --- Domain → HTTP response ---

func toEnteResponse(e *domain.Ente) enteResponse {
	integrantes := make([]integranteResponse, len(e.Integrantes))
	for i, m := range e.Integrantes {
		integrantes[i] = integranteResponse{Nombre: m.Nombre, Cargo: m.Cargo, Email: m.Email}
	}
	representantes := make([]representanteResponse, len(e.Representantes))
	for i, r := range e.Representantes {
		representantes[i] = representanteResponse{Nombre: r.Nombre, Caracter: r.Caracter, Instrumento: r.Instrumento}
	}
	documentos := make([]documentoResponse, len(e.MarcoNormativo))
	for i, d := range e.MarcoNormativo {
		documentos[i] = documentoResponse{Titulo: d.Titulo, Tipo: d.Tipo, PublicadoEn: d.PublicadoEn.UTC()}
	}
	return enteResponse{
		Folio:          e.Folio,
		Nombre:         e.Nombre,
		Tipo:           string(e.Tipo),
		Sector:         e.Sector,
		Integrantes:    integrantes,
		Representantes: representantes,
		MarcoNormativo: documentos,
		CreatedAt:      e.CreatedAt.UTC(),
		UpdatedAt:      e.UpdatedAt.UTC(),
	}
}

func toListResponse(r *ports.ListEntesResult) listEntesResponse {
	items := make([]enteSummaryResponse, len(r.Items))
	for i, e := range r.Items {
		items[i] = enteSummaryResponse{
			Folio:     e.Folio,
			Nombre:    e.Nombre,
			Tipo:      string(e.Tipo),
			Sector:    e.Sector,
			CreatedAt: e.CreatedAt.UTC(),
		}
	}
	return listEntesResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toPoderesResponse(p *domain.Poderes) poderesResponse {
	apoderados := make([]apoderadoResponse, len(p.Apoderados))
	for i, a := range p.Apoderados {
		apoderados[i] = apoderadoResponse{Nombre: a.Nombre, Cargo: a.Cargo, Facultades: a.Facultades}
	}
	return poderesResponse{
		EnteFolio:  p.EnteFolio,
		Apoderados: apoderados,
		OtorgadoEn: p.OtorgadoEn.UTC(),
		UpdatedAt:  p.UpdatedAt.UTC(),
	}
}
