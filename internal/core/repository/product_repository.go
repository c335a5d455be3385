package repository

import (
	"context"
	"time"

	"storefront/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository interface {
	Create(product *model.Product) error
	Delete(id string) error
	FindByID(id string) (*model.Product, error)
	FindAll() ([]*model.Product, error)
	FindByUser(userID string) ([]*model.Product, error)
	FindByCategory(category string) ([]*model.Product, error)
	// FindLatest returns up to limit products, newest first.
	FindLatest(limit int) ([]*model.Product, error)
	// Categories returns the distinct category labels in use.
	Categories() ([]string, error)
}

type MongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		collection: db.Collection("products"),
	}
}

func (r *MongoProductRepository) Create(product *model.Product) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, product)
	return err
}

func (r *MongoProductRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	return err
}

func (r *MongoProductRepository) FindByID(id string) (*model.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product model.Product
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &product, err
}

func (r *MongoProductRepository) FindAll() ([]*model.Product, error) {
	return r.find(bson.M{}, nil)
}

func (r *MongoProductRepository) FindByUser(userID string) ([]*model.Product, error) {
	return r.find(bson.M{"userId": userID}, nil)
}

func (r *MongoProductRepository) FindByCategory(category string) ([]*model.Product, error) {
	return r.find(bson.M{"category": category}, nil)
}

func (r *MongoProductRepository) FindLatest(limit int) ([]*model.Product, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(int64(limit))
	return r.find(bson.M{}, opts)
}

func (r *MongoProductRepository) Categories() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	values, err := r.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

func (r *MongoProductRepository) find(filter bson.M, opts *options.FindOptions) ([]*model.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection.Find(ctx, filter, opts)
	} else {
		cursor, err = r.collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
