package repository

import (
	"fmt"
	"sort"
	"sync"

	"storefront/internal/core/model"
)

type inMemoryProductRepository struct {
	products map[string]*model.Product
	mutex    sync.RWMutex
}

func NewInMemoryProductRepository() ProductRepository {
	return &inMemoryProductRepository{
		products: make(map[string]*model.Product),
	}
}

func (r *inMemoryProductRepository) Create(product *model.Product) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.products[product.ID]; exists {
		return fmt.Errorf("product with ID %s already exists", product.ID)
	}

	r.products[product.ID] = product
	return nil
}

func (r *inMemoryProductRepository) Delete(id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.products, id)
	return nil
}

func (r *inMemoryProductRepository) FindByID(id string) (*model.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if product, exists := r.products[id]; exists {
		return product, nil
	}
	return nil, nil
}

func (r *inMemoryProductRepository) FindAll() ([]*model.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	products := make([]*model.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, nil
}

func (r *inMemoryProductRepository) FindByUser(userID string) ([]*model.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.Product
	for _, product := range r.products {
		if product.UserID == userID {
			result = append(result, product)
		}
	}
	return result, nil
}

func (r *inMemoryProductRepository) FindByCategory(category string) ([]*model.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.Product
	for _, product := range r.products {
		if product.Category == category {
			result = append(result, product)
		}
	}
	return result, nil
}

func (r *inMemoryProductRepository) FindLatest(limit int) ([]*model.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	products := make([]*model.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})

	if len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

func (r *inMemoryProductRepository) Categories() ([]string, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, product := range r.products {
		if !seen[product.Category] {
			seen[product.Category] = true
			categories = append(categories, product.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}
