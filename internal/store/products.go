package store

import (
	"context"
	"errors"
	"fmt"

	"catalog-backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductStore is what the HTTP layer needs from product storage.
type ProductStore interface {
	ListProducts(ctx context.Context, userEmail string) ([]model.Product, error)
	// GetProduct returns nil and no error when nothing matches.
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (model.InsertResult, error)
	UpdateProduct(ctx context.Context, id string, in model.ProductInput) (model.UpdateResult, error)
	DeleteProduct(ctx context.Context, id string) (model.DeleteResult, error)
}

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("products"),
	}
}

func (r *ProductRepository) ListProducts(ctx context.Context, userEmail string) ([]model.Product, error) {
	filter := bson.M{}
	if userEmail != "" {
		filter["userEmail"] = userEmail
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", classify(err))
	}

	products := []model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", classify(err))
	}
	return products, nil
}

func (r *ProductRepository) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var product model.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", classify(err))
	}
	return &product, nil
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product *model.Product) (model.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to insert product: %w", classify(err))
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	product.ID = oid
	return model.InsertResult{Acknowledged: true, InsertedID: oid}, nil
}

// UpdateProduct overwrites the fixed field set. A missing document is not an
// error: Success stays true and Modified is false.
func (r *ProductRepository) UpdateProduct(ctx context.Context, id string, in model.ProductInput) (model.UpdateResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return model.UpdateResult{}, err
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": in.UpdateSet()})
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("failed to update product: %w", classify(err))
	}
	return model.UpdateResult{Success: true, Modified: res.ModifiedCount == 1}, nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id string) (model.DeleteResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return model.DeleteResult{}, err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("failed to delete product: %w", classify(err))
	}
	return model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
