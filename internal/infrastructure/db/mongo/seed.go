package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cgpe/repopa/internal/core/domain"
)

// The roles collection is seeded at startup and never grows: the role set
// is closed at deploy time.
var seededRoles = map[domain.Role]string{
	domain.RoleAdmin:    "rol_admin",
	domain.RoleCaptura:  "rol_captura",
	domain.RoleConsulta: "rol_consulta",
}

// RoleIDs returns the rol_id each role resolves from.
func RoleIDs() map[domain.Role]string {
	out := make(map[domain.Role]string, len(seededRoles))
	for k, v := range seededRoles {
		out[k] = v
	}
	return out
}

// SeedRoles upserts the closed role set and the partial unique index that
// enforces email uniqueness among active usuarios.
func SeedRoles(ctx context.Context, db *mongo.Database) error {
	roles := db.Collection(rolesCollection)
	for role, id := range seededRoles {
		_, err := roles.UpdateOne(ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{"nombre": string(role)}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed rol %s: %w", role, err)
		}
	}

	_, err := db.Collection(usuariosCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"activo": true}),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}

	_, err = db.Collection(entesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "folio", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create folio index: %w", err)
	}
	return nil
}
