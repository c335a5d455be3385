package model

import (
	"time"

	"github.com/google/uuid"
)

// Cart holds one user's shopping cart. A user has at most one cart; line
// items snapshot the product's name, price and image at the time of adding.
type Cart struct {
	ID         string     `bson:"id" json:"id"`
	UserID     string     `bson:"userId" json:"userId"`
	Items      []CartItem `bson:"cartItems" json:"cartItems"`
	TotalPrice float64    `bson:"totalPrice" json:"totalPrice"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
}

type CartItem struct {
	ID        string  `bson:"id" json:"id"`
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Image     string  `bson:"image" json:"image"`
	Qty       int     `bson:"qty" json:"qty"`
}

func NewCart(userID string) *Cart {
	return &Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     []CartItem{},
		CreatedAt: time.Now(),
	}
}

func NewCartItem(p *Product, qty int) CartItem {
	return CartItem{
		ID:        uuid.NewString(),
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Qty:       qty,
	}
}

// RecomputeTotal folds price*qty over the line items. Called after every
// mutation so the stored total can never drift from the items.
func (c *Cart) RecomputeTotal() {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Qty)
	}
	c.TotalPrice = total
}
