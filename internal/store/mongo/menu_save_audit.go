package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/bgocumlu/menu/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MenuSaveAuditRepository struct {
	collection *mongo.Collection
}

func NewMenuSaveAuditRepository(db *mongo.Database) *MenuSaveAuditRepository {
	return &MenuSaveAuditRepository{
		collection: db.Collection(collectionMenuSaveAudit),
	}
}

func (r *MenuSaveAuditRepository) Create(ctx context.Context, audit *domain.MenuSaveAudit) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, audit)
	if err != nil {
		return fmt.Errorf("failed to create menu save audit: %w", err)
	}

	return nil
}

func (r *MenuSaveAuditRepository) GetByRestaurantID(ctx context.Context, restaurantID string, limit int) ([]domain.MenuSaveAudit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"restaurant_id": restaurantID}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu save audits: %w", err)
	}
	defer cursor.Close(ctx)

	var audits []domain.MenuSaveAudit
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, fmt.Errorf("failed to decode menu save audits: %w", err)
	}

	return audits, nil
}
