package service

import (
	"storefront/internal/core/model"
	"storefront/internal/core/repository"
)

// CategoryService backs the category browsing pages. Categories are the
// distinct labels carried by products, not records of their own.
type CategoryService interface {
	Categories() ([]string, error)
	Products(category string) ([]*model.Product, error)
}

type categoryService struct {
	productRepo repository.ProductRepository
}

func NewCategoryService(productRepo repository.ProductRepository) CategoryService {
	return &categoryService{
		productRepo: productRepo,
	}
}

func (s *categoryService) Categories() ([]string, error) {
	return s.productRepo.Categories()
}

func (s *categoryService) Products(category string) ([]*model.Product, error) {
	return s.productRepo.FindByCategory(category)
}
