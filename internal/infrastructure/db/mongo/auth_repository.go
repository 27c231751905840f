package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cgpe/repopa/internal/core/domain"
)

const usuariosCollection = "usuarios"

// AuthRepository persists login-capable accounts in the usuarios collection.
// Email uniqueness among active accounts is backed by a partial unique index.
type AuthRepository struct {
	coll *mongo.Collection
}

func NewAuthRepository(db *mongo.Database) *AuthRepository {
	return &AuthRepository{coll: db.Collection(usuariosCollection)}
}

type usuarioDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Nombre       string             `bson:"nombre"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	RolID        string             `bson:"rol_id"`
	Activo       bool               `bson:"activo"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (r *AuthRepository) FindActiveByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc usuarioDoc
	err := r.coll.FindOne(ctx, bson.M{"email": email, "activo": true}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUnknownUser
		}
		return nil, fmt.Errorf("find usuario: %w", err)
	}
	return toCredential(doc), nil
}

func (r *AuthRepository) Create(ctx context.Context, cred *domain.Credential) (*domain.Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := usuarioDoc{
		Nombre:       cred.Nombre,
		Email:        cred.Email,
		PasswordHash: cred.PasswordHash,
		RolID:        cred.RolID,
		Activo:       cred.Activo,
		CreatedAt:    cred.CreatedAt.Unix(),
		UpdatedAt:    cred.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert usuario: %w", err)
	}

	created := *cred
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *AuthRepository) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "activo": true},
		bson.M{"$set": bson.M{"password_hash": hash, "updated_at": time.Now().Unix()}},
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *AuthRepository) Deactivate(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"activo": false, "updated_at": time.Now().Unix()}},
	)
	if err != nil {
		return fmt.Errorf("deactivate usuario: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *AuthRepository) List(ctx context.Context) ([]*domain.Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"activo": true})
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Credential
	for cur.Next(ctx) {
		var doc usuarioDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode usuario: %w", err)
		}
		out = append(out, toCredential(doc))
	}
	return out, cur.Err()
}

func toCredential(doc usuarioDoc) *domain.Credential {
	return &domain.Credential{
		ID:           doc.ID.Hex(),
		Nombre:       doc.Nombre,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		RolID:        doc.RolID,
		Activo:       doc.Activo,
		CreatedAt:    unixToTime(doc.CreatedAt),
		UpdatedAt:    unixToTime(doc.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
