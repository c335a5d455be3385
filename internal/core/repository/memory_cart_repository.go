package repository

import (
	"fmt"
	"sync"

	"storefront/internal/core/model"
)

type inMemoryCartRepository struct {
	carts map[string]*model.Cart // keyed by user ID, one cart per user
	mutex sync.RWMutex
}

func NewInMemoryCartRepository() CartRepository {
	return &inMemoryCartRepository{
		carts: make(map[string]*model.Cart),
	}
}

func (r *inMemoryCartRepository) Create(cart *model.Cart) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.carts[cart.UserID]; exists {
		return fmt.Errorf("cart for user %s already exists", cart.UserID)
	}

	r.carts[cart.UserID] = cart
	return nil
}

func (r *inMemoryCartRepository) Update(cart *model.Cart) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.carts[cart.UserID]; !exists {
		return fmt.Errorf("cart for user %s not found", cart.UserID)
	}

	r.carts[cart.UserID] = cart
	return nil
}

func (r *inMemoryCartRepository) FindByUser(userID string) (*model.Cart, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if cart, exists := r.carts[userID]; exists {
		return cart, nil
	}
	return nil, nil
}
