package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tedcar/rental-console/internal/core/domain"
)

const sessionCollection = "sessions"

// SessionStore keeps the credential in one document whose _id is the fixed
// slot name. Every operation touches that single document.
type SessionStore struct {
	coll *mongo.Collection
}

func NewSessionStore(db *mongo.Database) *SessionStore {
	return &SessionStore{coll: db.Collection(sessionCollection)}
}

type sessionDoc struct {
	ID        string `bson:"_id"`
	Token     string `bson:"token"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (s *SessionStore) Set(ctx context.Context, c domain.Credential) error {
	doc := sessionDoc{
		ID:        domain.CredentialSlot,
		Token:     string(c),
		UpdatedAt: time.Now().UTC().Unix(),
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert credential: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context) (domain.Credential, error) {
	var doc sessionDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": domain.CredentialSlot}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", domain.ErrNoCredential
	}
	if err != nil {
		return "", fmt.Errorf("find credential: %w", err)
	}
	if doc.Token == "" {
		return "", domain.ErrNoCredential
	}
	return domain.Credential(doc.Token), nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": domain.CredentialSlot}); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

func (s *SessionStore) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}
