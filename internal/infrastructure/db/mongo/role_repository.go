package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cgpe/repopa/internal/core/domain"
)

const rolesCollection = "roles"

// RoleRepository resolves rol_id references against the seeded roles
// collection. A dangling reference surfaces as domain.ErrInvalidRole and is
// handled by the caller's fail-safe fallback, never by inventing a role here.
type RoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{coll: db.Collection(rolesCollection)}
}

type rolDoc struct {
	ID     string `bson:"_id"`
	Nombre string `bson:"nombre"`
}

func (r *RoleRepository) FindByID(ctx context.Context, id string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc rolDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", domain.ErrInvalidRole
		}
		return "", fmt.Errorf("find rol: %w", err)
	}
	return doc.Nombre, nil
}
