package repository

import (
	"context"
	"time"

	"storefront/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartRepository interface {
	Create(cart *model.Cart) error
	Update(cart *model.Cart) error
	FindByUser(userID string) (*model.Cart, error)
}

type MongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{
		collection: db.Collection("carts"),
	}
}

func (r *MongoCartRepository) Create(cart *model.Cart) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, cart)
	return err
}

func (r *MongoCartRepository) Update(cart *model.Cart) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.ReplaceOne(ctx, bson.M{"id": cart.ID}, cart)
	return err
}

func (r *MongoCartRepository) FindByUser(userID string) (*model.Cart, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cart model.Cart
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &cart, err
}
