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
)

const poderesCollection = "poderes"

// PoderRepository stores one poderes document per ente folio. Replace is a
// single upsert, so the previous apoderados set survives a failed request.
type PoderRepository struct {
	coll *mongo.Collection
}

func NewPoderRepository(db *mongo.Database) *PoderRepository {
	return &PoderRepository{coll: db.Collection(poderesCollection)}
}

type poderesDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EnteFolio  string             `bson:"ente_folio"`
	Apoderados []domain.Apoderado `bson:"apoderados"`
	OtorgadoEn time.Time          `bson:"otorgado_en"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (r *PoderRepository) Replace(ctx context.Context, p *domain.Poderes) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"ente_folio":  p.EnteFolio,
		"apoderados":  p.Apoderados,
		"otorgado_en": p.OtorgadoEn,
		"updated_at":  p.UpdatedAt,
	}

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"ente_folio": p.EnteFolio},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("replace poderes: %w", err)
	}
	return nil
}

func (r *PoderRepository) FindByFolio(ctx context.Context, folio string) (*domain.Poderes, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc poderesDoc
	err := r.coll.FindOne(ctx, bson.M{"ente_folio": folio}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPoderNotFound
		}
		return nil, fmt.Errorf("find poderes: %w", err)
	}
	return &domain.Poderes{
		ID:         doc.ID.Hex(),
		EnteFolio:  doc.EnteFolio,
		Apoderados: doc.Apoderados,
		OtorgadoEn: doc.OtorgadoEn,
		UpdatedAt:  doc.UpdatedAt,
	}, nil
}
