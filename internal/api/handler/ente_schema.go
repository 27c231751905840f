package handler

import "time"

// errorResponse documents the standard error envelope on 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type integranteRequest struct {
	Nombre string `json:"nombre" validate:"required"`
	Cargo  string `json:"cargo"  validate:"required"`
	Email  string `json:"email"  validate:"omitempty,email"`
}

type representanteRequest struct {
	Nombre      string `json:"nombre"   validate:"required"`
	Caracter    string `json:"caracter" validate:"required"`
	Instrumento string `json:"instrumento"`
}

type documentoRequest struct {
	Titulo      string    `json:"titulo"       validate:"required"`
	Tipo        string    `json:"tipo"         validate:"required"`
	PublicadoEn time.Time `json:"publicado_en" validate:"required"`
}

type createEnteRequest struct {
	Nombre         string                 `json:"nombre" validate:"required"`
	Tipo           string                 `json:"tipo"   validate:"required,oneof=ORGANISMO FIDEICOMISO EMPRESA"`
	Sector         string                 `json:"sector" validate:"required"`
	Integrantes    []integranteRequest    `json:"integrantes"     validate:"dive"`
	Representantes []representanteRequest `json:"representantes"  validate:"dive"`
	MarcoNormativo []documentoRequest     `json:"marco_normativo" validate:"dive"`
}

// updateEnteRequest is the full desired state of the ente: PUT replaces
// every mutable field, so an omitted list clears the stored one.
type updateEnteRequest struct {
	Nombre         string                 `json:"nombre" validate:"required"`
	Tipo           string                 `json:"tipo"   validate:"required,oneof=ORGANISMO FIDEICOMISO EMPRESA"`
	Sector         string                 `json:"sector" validate:"required"`
	Integrantes    []integranteRequest    `json:"integrantes"     validate:"dive"`
	Representantes []representanteRequest `json:"representantes"  validate:"dive"`
	MarcoNormativo []documentoRequest     `json:"marco_normativo" validate:"dive"`
}

type apoderadoRequest struct {
	Nombre     string   `json:"nombre"     validate:"required"`
	Cargo      string   `json:"cargo"      validate:"required"`
	Facultades []string `json:"facultades" validate:"required,min=1"`
}

type replacePoderesRequest struct {
	Apoderados []apoderadoRequest `json:"apoderados"  validate:"required,dive"`
	OtorgadoEn time.Time          `json:"otorgado_en" validate:"required"`
}

// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type integranteResponse struct {
	Nombre string `json:"nombre"`
	Cargo  string `json:"cargo"`
	Email  string `json:"email,omitempty"`
}

type representanteResponse struct {
	Nombre      string `json:"nombre"`
	Caracter    string `json:"caracter"`
	Instrumento string `json:"instrumento,omitempty"`
}

type documentoResponse struct {
	Titulo      string    `json:"titulo"`
	Tipo        string    `json:"tipo"`
	PublicadoEn time.Time `json:"publicado_en"`
}

type enteResponse struct {
	Folio          string                  `json:"folio"`
	Nombre         string                  `json:"nombre"`
	Tipo           string                  `json:"tipo"`
	Sector         string                  `json:"sector"`
	Integrantes    []integranteResponse    `json:"integrantes"`
	Representantes []representanteResponse `json:"representantes"`
	MarcoNormativo []documentoResponse     `json:"marco_normativo"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// enteSummaryResponse is the lightweight item used in list responses.
type enteSummaryResponse struct {
	Folio     string    `json:"folio"`
	Nombre    string    `json:"nombre"`
	Tipo      string    `json:"tipo"`
	Sector    string    `json:"sector"`
	CreatedAt time.Time `json:"created_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listEntesResponse struct {
	Data       []enteSummaryResponse `json:"data"`
	Pagination paginationResponse    `json:"pagination"`
}

type apoderadoResponse struct {
	Nombre     string   `json:"nombre"`
	Cargo      string   `json:"cargo"`
	Facultades []string `json:"facultades"`
}

type poderesResponse struct {
	EnteFolio  string              `json:"ente_folio"`
	Apoderados []apoderadoResponse `json:"apoderados"`
	OtorgadoEn time.Time           `json:"otorgado_en"`
	UpdatedAt  time.Time           `json:"updated_at"`
}
