package service

import (
	"fmt"

	"storefront/internal/core/model"
	"storefront/internal/core/repository"
)

// CartService owns the mutation rules for a user's cart. Every mutating
// operation recomputes the stored total before persisting.
type CartService interface {
	// GetOrCreate returns the user's cart, persisting a new empty one on
	// first access. Idempotent.
	GetOrCreate(userID string) (*model.Cart, error)
	// AddItem appends a line item snapshotting the product, or increments
	// the quantity if the product is already in the cart.
	AddItem(userID, productID string, qty int) error
	// UpdateItemQty sets a line item's quantity exactly. A quantity of zero
	// or below removes the item. Unknown item IDs are a no-op.
	UpdateItemQty(userID, itemID string, qty int) error
	// RemoveItem drops a line item. Unknown item IDs are a no-op.
	RemoveItem(userID, itemID string) error
	// Clear empties the cart without deleting the cart record.
	Clear(userID string) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartService) GetOrCreate(userID string) (*model.Cart, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", ErrValidation)
	}

	cart, err := s.cartRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}

	cart = model.NewCart(userID)
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) AddItem(userID, productID string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	if product.Stock < qty {
		return ErrOutOfStock
	}

	cart, err := s.GetOrCreate(userID)
	if err != nil {
		return err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Qty += qty
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, model.NewCartItem(product, qty))
	}

	cart.RecomputeTotal()
	return s.cartRepo.Update(cart)
}

func (s *cartService) UpdateItemQty(userID, itemID string, qty int) error {
	cart, err := s.cartRepo.FindByUser(userID)
	if err != nil || cart == nil {
		return err
	}

	for i := range cart.Items {
		if cart.Items[i].ID != itemID {
			continue
		}
		if qty <= 0 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		} else {
			cart.Items[i].Qty = qty
		}
		cart.RecomputeTotal()
		return s.cartRepo.Update(cart)
	}

	// Unknown item: nothing to persist.
	return nil
}

func (s *cartService) RemoveItem(userID, itemID string) error {
	cart, err := s.cartRepo.FindByUser(userID)
	if err != nil || cart == nil {
		return err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	cart.RecomputeTotal()
	return s.cartRepo.Update(cart)
}

func (s *cartService) Clear(userID string) error {
	cart, err := s.cartRepo.FindByUser(userID)
	if err != nil || cart == nil {
		return err
	}

	cart.Items = []model.CartItem{}
	cart.TotalPrice = 0
	return s.cartRepo.Update(cart)
}
