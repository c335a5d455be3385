package service

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/cache"
	"storefront/internal/core/model"
	"storefront/internal/core/repository"
)

// ProductInput is the validated shape of a product submission.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string // optional, placeholder when empty
	Stock       int    // optional, zero when omitted
}

type ProductService interface {
	List() ([]*model.Product, error)
	ListByOwner(userID string) ([]*model.Product, error)
	Get(id string) (*model.Product, error)
	// Latest returns up to limit products, newest first, for the storefront
	// page. Served from cache when one is configured.
	Latest(limit int) ([]*model.Product, error)
	Create(ownerID string, input ProductInput) (*model.Product, error)
	// Delete removes a product if the actor owns it or is an admin.
	Delete(actorID string, isAdmin bool, productID string) error
}

type productService struct {
	productRepo repository.ProductRepository
	cache       *cache.Cache
}

func NewProductService(productRepo repository.ProductRepository, productCache *cache.Cache) ProductService {
	return &productService{
		productRepo: productRepo,
		cache:       productCache,
	}
}

const latestCacheKey = "products:latest"

func (s *productService) List() ([]*model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) ListByOwner(userID string) ([]*model.Product, error) {
	return s.productRepo.FindByUser(userID)
}

func (s *productService) Get(id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

func (s *productService) Latest(limit int) ([]*model.Product, error) {
	ctx := context.Background()

	var cached []*model.Product
	if err := s.cache.Get(ctx, latestCacheKey, &cached); err == nil {
		return cached, nil
	}

	products, err := s.productRepo.FindLatest(limit)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, latestCacheKey, products, time.Minute); err != nil {
		// Cache failures never surface to the storefront page.
		return products, nil
	}
	return products, nil
}

func (s *productService) Create(ownerID string, input ProductInput) (*model.Product, error) {
	if input.Name == "" || input.Description == "" || input.Category == "" {
		return nil, fmt.Errorf("%w: name, description, price and category are required", ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if input.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}

	product := model.NewProduct(input.Name, input.Description, input.Price, input.Category, input.Image, input.Stock, ownerID)
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	s.cache.Delete(context.Background(), latestCacheKey)
	return product, nil
}

func (s *productService) Delete(actorID string, isAdmin bool, productID string) error {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}

	if !isAdmin && product.UserID != actorID {
		return ErrForbidden
	}

	if err := s.productRepo.Delete(productID); err != nil {
		return err
	}

	s.cache.Delete(context.Background(), latestCacheKey)
	return nil
}
