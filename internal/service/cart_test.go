package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostorefront/catalog/internal/models"
	"github.com/gostorefront/catalog/internal/service"
)

func TestCartService_GetCart_CreatesExactlyOneCart(t *testing.T) {
	rp := newTestRepo(t)
	svc := &service.CartService{Repo: rp}
	ctx := context.Background()
	userID := uuid.New()

	cart, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Equal(t, userID, cart.UserID)
	assert.Empty(t, cart.Items)

	// a second read returns the same cart, not a new row
	again, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)

	var count int64
	require.NoError(t, rp.DB.Model(&models.Cart{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCartService_AddItem_AccumulatesQuantity(t *testing.T) {
	rp := newTestRepo(t)
	svc := &service.CartService{Repo: rp}
	ctx := context.Background()
	userID := uuid.New()

	p := seedProduct(t, rp.DB, "Smart Watch", "fitness tracking", 199.99, time.Now())

	cart, err := svc.AddItem(ctx, userID, p.ID, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.EqualValues(t, 1, cart.Items[0].Quantity)

	cart, err = svc.AddItem(ctx, userID, p.ID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.EqualValues(t, 3, cart.Items[0].Quantity)

	var count int64
	require.NoError(t, rp.DB.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cart.ID, p.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCartService_AddItem_JoinsProductData(t *testing.T) {
	rp := newTestRepo(t)
	svc := &service.CartService{Repo: rp}
	ctx := context.Background()

	p := seedProduct(t, rp.DB, "Wireless Mouse", "ergonomic", 29.99, time.Now())

	cart, err := svc.AddItem(ctx, uuid.New(), p.ID, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, p.ID, cart.Items[0].Product.ID)
	assert.Equal(t, "Wireless Mouse", cart.Items[0].Product.Name)
	assert.Equal(t, 29.99, cart.Items[0].Product.Price)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	rp := newTestRepo(t)
	svc := &service.CartService{Repo: rp}
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.AddItem(ctx, userID, uuid.New(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)

	// failed add must not create a cart as a side effect
	var count int64
	require.NoError(t, rp.DB.Model(&models.Cart{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCartService_AddItem_InvalidInput(t *testing.T) {
	rp := newTestRepo(t)
	svc := &service.CartService{Repo: rp}
	ctx := context.Background()

	p := seedProduct(t, rp.DB, "4K Monitor", "27-inch UHD", 299.99, time.Now())

	_, err := svc.AddItem(ctx, uuid.New(), p.ID, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.AddItem(ctx, uuid.New(), uuid.Nil, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrValidation)

	var count int64
	require.NoError(t, rp.DB.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCartService_SetQuantity_OverwritesInsteadOfAdding(t *testing.T) {
	rp := newTestRepo(t)
	svc := &service.CartService{Repo: rp}
	ctx := context.Background()
	userID := uuid.New()

	p := seedProduct(t, rp.DB, "Mechanical Keyboard", "blue switches", 79.99, time.Now())

	_, err := svc.AddItem(ctx, userID, p.ID, 5)
	require.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, userID, p.ID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.EqualValues(t, 2, cart.Items[0].Quantity)
}

func TestCartService_SetQuantity_InsertsAbsentLine(t *testing.T) {
	rp := newTestRepo(t)
	svc := &service.CartService{Repo: rp}
	ctx := context.Background()

	p := seedProduct(t, rp.DB, "Laptop Backpack", "padded compartment", 49.99, time.Now())

	cart, err := svc.SetQuantity(ctx, uuid.New(), p.ID, 4)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.EqualValues(t, 4, cart.Items[0].Quantity)
}

func TestCartService_RemoveItem_DeletesLine(t *testing.T) {
	rp := newTestRepo(t)
	svc := &service.CartService{Repo: rp}
	ctx := context.Background()
	userID := uuid.New()

	p1 := seedProduct(t, rp.DB, "Wireless Headphones", "noise cancellation", 99.99, time.Now())
	p2 := seedProduct(t, rp.DB, "Smart Watch", "notifications", 199.99, time.Now())

	_, err := svc.AddItem(ctx, userID, p1.ID, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, userID, p2.ID, 2)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, userID, p1.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, p2.ID, cart.Items[0].ProductID)
}

func TestCartService_RemoveItem_AbsentLineIsNoop(t *testing.T) {
	rp := newTestRepo(t)
	svc := &service.CartService{Repo: rp}
	ctx := context.Background()
	userID := uuid.New()

	p := seedProduct(t, rp.DB, "Wireless Mouse", "long battery", 29.99, time.Now())
	_, err := svc.AddItem(ctx, userID, p.ID, 2)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, userID, uuid.New())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.EqualValues(t, 2, cart.Items[0].Quantity)
}

func TestCartService_RemoveItem_NoCart(t *testing.T) {
	rp := newTestRepo(t)
	svc := &service.CartService{Repo: rp}
	ctx := context.Background()

	_, err := svc.RemoveItem(ctx, uuid.New(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCartService_CartsAreIsolatedPerUser(t *testing.T) {
	rp := newTestRepo(t)
	svc := &service.CartService{Repo: rp}
	ctx := context.Background()

	p := seedProduct(t, rp.DB, "4K Monitor", "HDR support", 299.99, time.Now())

	alice, bob := uuid.New(), uuid.New()
	_, err := svc.AddItem(ctx, alice, p.ID, 3)
	require.NoError(t, err)

	cart, err := svc.GetCart(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
