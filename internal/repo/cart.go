package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gostorefront/catalog/internal/models"
)

// GetOrCreateCart is the explicit write behind the "cart is never missing"
// contract: the first read for a user inserts the empty cart row.
func (r *GormRepo) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).
		Where(models.Cart{UserID: userID}).
		FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// FindCart returns gorm.ErrRecordNotFound when the user has no cart row.
func (r *GormRepo) FindCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// LoadCart reloads a cart with its items and their products joined in.
func (r *GormRepo) LoadCart(ctx context.Context, cartID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.Product").
		First(&cart, "id = ?", cartID).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItemQuantity accumulates quantity onto an existing line item with a
// single UPDATE; only when no row matched does it insert one.
func (r *GormRepo) AddItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity uint) error {
	return r.upsertItem(ctx, cartID, productID, quantity, gorm.Expr("quantity + ?", quantity))
}

// SetItemQuantity overwrites the line quantity, inserting the line when it
// does not exist yet.
func (r *GormRepo) SetItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity uint) error {
	return r.upsertItem(ctx, cartID, productID, quantity, quantity)
}

func (r *GormRepo) upsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity uint, value any) error {
	db := r.DB.WithContext(ctx)

	res := db.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Update("quantity", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	return r.insertOrFoldItem(db, cartID, productID, quantity, value)
}

// insertOrFoldItem inserts a fresh line. When a concurrent request created
// the line first, the insert loses on the (cart_id, product_id) unique
// index and the value is applied to the winner's row instead.
func (r *GormRepo) insertOrFoldItem(db *gorm.DB, cartID, productID uuid.UUID, quantity uint, value any) error {
	item := models.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}
	err := db.Create(&item).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	return db.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Update("quantity", value).Error
}

// DeleteItem removes the matching line if present. Deleting an absent line
// is not an error.
func (r *GormRepo) DeleteItem(ctx context.Context, cartID, productID uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{}).Error
}
