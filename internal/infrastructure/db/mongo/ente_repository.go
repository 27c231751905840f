package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cgpe/repopa/internal/core/domain"
	"github.com/cgpe/repopa/internal/core/ports"
)

const entesCollection = "entes"

type EnteRepository struct {
	coll *mongo.Collection
}

func NewEnteRepository(db *mongo.Database) *EnteRepository {
	return &EnteRepository{coll: db.Collection(entesCollection)}
}

type enteDoc struct {
	ID             primitive.ObjectID     `bson:"_id,omitempty"`
	Folio          string                 `bson:"folio"`
	Nombre         string                 `bson:"nombre"`
	Tipo           string                 `bson:"tipo"`
	Sector         string                 `bson:"sector"`
	Integrantes    []domain.Integrante    `bson:"integrantes"`
	Representantes []domain.Representante `bson:"representantes"`
	MarcoNormativo []domain.Documento     `bson:"marco_normativo"`
	Activo         bool                   `bson:"activo"`
	CreatedAt      time.Time              `bson:"created_at"`
	UpdatedAt      time.Time              `bson:"updated_at"`
}

func toEnteDoc(e *domain.Ente) enteDoc {
	return enteDoc{
		Folio:          e.Folio,
		Nombre:         e.Nombre,
		Tipo:           string(e.Tipo),
		Sector:         e.Sector,
		Integrantes:    e.Integrantes,
		Representantes: e.Representantes,
		MarcoNormativo: e.MarcoNormativo,
		Activo:         e.Activo,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toEnte(doc enteDoc) *domain.Ente {
	return &domain.Ente{
		ID:             doc.ID.Hex(),
		Folio:          doc.Folio,
		Nombre:         doc.Nombre,
		Tipo:           domain.TipoEnte(doc.Tipo),
		Sector:         doc.Sector,
		Integrantes:    doc.Integrantes,
		Representantes: doc.Representantes,
		MarcoNormativo: doc.MarcoNormativo,
		Activo:         doc.Activo,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}

func (r *EnteRepository) Create(ctx context.Context, e *domain.Ente) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toEnteDoc(e))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateEnte
		}
		return fmt.Errorf("insert ente: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid.Hex()
	}
	return nil
}

func (r *EnteRepository) FindByFolio(ctx context.Context, folio string) (*domain.Ente, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc enteDoc
	err := r.coll.FindOne(ctx, bson.M{"folio": folio, "activo": true}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEnteNotFound
		}
		return nil, fmt.Errorf("find ente: %w", err)
	}
	return toEnte(doc), nil
}

func (r *EnteRepository) Update(ctx context.Context, e *domain.Ente) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"folio": e.Folio, "activo": true}, toEnteDoc(e))
	if err != nil {
		return fmt.Errorf("update ente: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEnteNotFound
	}
	return nil
}

func (r *EnteRepository) Deactivate(ctx context.Context, folio string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"folio": folio, "activo": true},
		bson.M{"$set": bson.M{"activo": false, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("deactivate ente: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEnteNotFound
	}
	return nil
}

func (r *EnteRepository) List(ctx context.Context, filter ports.ListEntesFilter) ([]*domain.Ente, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"activo": true}
	if filter.Tipo != "" {
		query["tipo"] = filter.Tipo
	}
	if filter.Sector != "" {
		query["sector"] = filter.Sector
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"nombre": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"folio": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count entes: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list entes: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Ente
	for cur.Next(ctx) {
		var doc enteDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode ente: %w", err)
		}
		out = append(out, toEnte(doc))
	}
	return out, total, cur.Err()
}
