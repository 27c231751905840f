package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cgpe/repopa/internal/core/domain"
)

const bitacoraCollection = "bitacora"

// BitacoraRepository appends audit entries. The collection is append-only;
// nothing in the application updates or removes rows.
type BitacoraRepository struct {
	coll *mongo.Collection
}

func NewBitacoraRepository(db *mongo.Database) *BitacoraRepository {
	return &BitacoraRepository{coll: db.Collection(bitacoraCollection)}
}

func (r *BitacoraRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"folio":     entry.Folio,
		"accion":    entry.Accion,
		"actor":     entry.Actor,
		"detalle":   entry.Detalle,
		"timestamp": entry.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert bitacora entry: %w", err)
	}
	return nil
}
