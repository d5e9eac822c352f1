package products

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

// Repository finds products whose name matches a regular expression,
// case-insensitively.
type Repository interface {
	FindByName(ctx context.Context, pattern string, limit int64) ([]Product, error)
}

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(collection *mongo.Collection) *MongoRepository {
	return &MongoRepository{
		collection: collection,
	}
}

func (r *MongoRepository) FindByName(ctx context.Context, pattern string, limit int64) ([]Product, error) {
	filter := bson.M{
		"name": bson.M{"$regex": pattern, "$options": "i"},
	}

	opts := options.Find().
		SetProjection(bson.M{"_id": 0, "name": 1, "category": 1, "price": 1, "image_url": 1}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find on %s failed: %w", r.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	products := make([]Product, 0, limit)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}
