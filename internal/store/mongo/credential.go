package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bgocumlu/menu/internal/domain"
	"github.com/bgocumlu/menu/internal/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CredentialRepository struct {
	collection *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{
		collection: db.Collection(collectionPasswords),
	}
}

func (r *CredentialRepository) Get(ctx context.Context) (*domain.Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var credential domain.Credential
	err := r.collection.FindOne(ctx, bson.M{"slot": domain.CredentialSlot}).Decode(&credential)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("credential %w", repo.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}

	return &credential, nil
}

func (r *CredentialRepository) Create(ctx context.Context, credential *domain.Credential) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if credential.ID.IsZero() {
		credential.ID = primitive.NewObjectID()
	}
	credential.Slot = domain.CredentialSlot
	if credential.CreatedAt.IsZero() {
		credential.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, credential)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repo.ErrCredentialExists
		}
		return fmt.Errorf("failed to create credential: %w", err)
	}

	return nil
}
