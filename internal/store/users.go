package store

import (
	"context"
	"fmt"

	"catalog-backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserStore interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, user model.User) (model.InsertResult, error)
}

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", classify(err))
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", classify(err))
	}

	users := make([]model.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, model.UserFromDocument(doc))
	}
	return users, nil
}

// CreateUser inserts the body verbatim. Duplicate emails are allowed.
func (r *UserRepository) CreateUser(ctx context.Context, user model.User) (model.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, user.Document())
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to insert user: %w", classify(err))
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return model.InsertResult{Acknowledged: true, InsertedID: oid}, nil
}
