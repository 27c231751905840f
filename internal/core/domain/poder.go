package domain

import "time"

// Apoderado is one attorney-in-fact holding granted powers.
type Apoderado struct {
	Nombre     string   `json:"nombre" bson:"nombre"`
	Cargo      string   `json:"cargo" bson:"cargo"`
	Facultades []string `json:"facultades" bson:"facultades"`
}

// Poderes holds every power of attorney granted by a single ente. The full
// set is replaced as one document so a partial write can never drop
// previously granted powers.
type Poderes struct {
	ID         string      `json:"id"`
	EnteFolio  string      `json:"ente_folio" bson:"ente_folio"`
	Apoderados []Apoderado `json:"apoderados" bson:"apoderados"`
	OtorgadoEn time.Time   `json:"otorgado_en" bson:"otorgado_en"`
	UpdatedAt  time.Time   `json:"updated_at" bson:"updated_at"`
}

// AuditEntry is one bitácora row recording a mutation on the registry.
type AuditEntry struct {
	Folio     string    `json:"folio"`
	Accion    string    `json:"accion"`
	Actor     string    `json:"actor"`
	Detalle   string    `json:"detalle,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
