package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gostorefront/catalog/internal/models"
	"github.com/gostorefront/catalog/internal/repo"
)

// CartService keeps the invariant of at most one line item per product per
// cart. Every operation is scoped to the calling user and returns the full
// reloaded cart.
type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.Repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.LoadCart(ctx, cart.ID)
}

// AddItem accumulates quantity onto the user's line for productID,
// creating the cart and the line as needed.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity uint) (*models.Cart, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("product id is required: %w", ErrValidation)
	}
	if quantity == 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}

	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
		}
		return nil, err
	}

	cart, err := s.Repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.AddItemQuantity(ctx, cart.ID, productID, quantity); err != nil {
		return nil, err
	}

	return s.Repo.LoadCart(ctx, cart.ID)
}

// SetQuantity overwrites the line quantity instead of accumulating. It is
// the correction path used by quantity-edit controls.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity uint) (*models.Cart, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("product id is required: %w", ErrValidation)
	}
	if quantity == 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}

	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
		}
		return nil, err
	}

	cart, err := s.Repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.SetItemQuantity(ctx, cart.ID, productID, quantity); err != nil {
		return nil, err
	}

	return s.Repo.LoadCart(ctx, cart.ID)
}

// RemoveItem deletes the line for productID if present; removing an absent
// line is a no-op. A user without a cart gets NotFound.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*models.Cart, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("product id is required: %w", ErrValidation)
	}

	cart, err := s.Repo.FindCart(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
		}
		return nil, err
	}

	if err := s.Repo.DeleteItem(ctx, cart.ID, productID); err != nil {
		return nil, err
	}

	return s.Repo.LoadCart(ctx, cart.ID)
}
