package model

import (
	"time"

	"github.com/google/uuid"
)

const PlaceholderImage = "/images/product-placeholder.jpg"

type Product struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	Category    string    `bson:"category" json:"category"`
	Image       string    `bson:"image" json:"image"`
	Stock       int       `bson:"stock" json:"stock"`
	UserID      string    `bson:"userId" json:"userId"` // owner, immutable after creation
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

func NewProduct(name, description string, price float64, category, image string, stock int, userID string) *Product {
	if image == "" {
		image = PlaceholderImage
	}
	return &Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Image:       image,
		Stock:       stock,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}
}
