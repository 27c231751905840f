package domain

import "time"

// TipoEnte classifies a registered ente.
type TipoEnte string

const (
	TipoOrganismo   TipoEnte = "ORGANISMO"
	TipoFideicomiso TipoEnte = "FIDEICOMISO"
	TipoEmpresa     TipoEnte = "EMPRESA"
)

// Integrante is a governing-body member of an ente.
type Integrante struct {
	Nombre string `json:"nombre" bson:"nombre"`
	Cargo  string `json:"cargo" bson:"cargo"`
	Email  string `json:"email,omitempty" bson:"email,omitempty"`
}

// Representante is a legal representative of an ente.
type Representante struct {
	Nombre      string `json:"nombre" bson:"nombre"`
	Caracter    string `json:"caracter" bson:"caracter"`
	Instrumento string `json:"instrumento,omitempty" bson:"instrumento,omitempty"`
}

// Documento is one regulatory document in the ente's marco normativo.
type Documento struct {
	Titulo      string    `json:"titulo" bson:"titulo"`
	Tipo        string    `json:"tipo" bson:"tipo"`
	PublicadoEn time.Time `json:"publicado_en" bson:"publicado_en"`
}

// Ente is the core aggregate: a public organism, trust, or
// state-participation company tracked by the registry.
type Ente struct {
	ID             string          `json:"id"`
	Folio          string          `json:"folio" bson:"folio"`
	Nombre         string          `json:"nombre" bson:"nombre"`
	Tipo           TipoEnte        `json:"tipo" bson:"tipo"`
	Sector         string          `json:"sector" bson:"sector"`
	Integrantes    []Integrante    `json:"integrantes" bson:"integrantes"`
	Representantes []Representante `json:"representantes" bson:"representantes"`
	MarcoNormativo []Documento     `json:"marco_normativo" bson:"marco_normativo"`
	Activo         bool            `json:"activo" bson:"activo"`
	CreatedAt      time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" bson:"updated_at"`
}

// ValidTipo reports whether t is one of the closed tipo set.
func ValidTipo(t TipoEnte) bool {
	switch t {
	case TipoOrganismo, TipoFideicomiso, TipoEmpresa:
		return true
	}
	return false
}
