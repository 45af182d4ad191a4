// Package seed fills the database with the demo user and catalog, and
// mirrors the catalog into the optional search index and event stream.
package seed

import (
	"context"
	"fmt"

	"github.com/gostorefront/catalog/internal/events"
	"github.com/gostorefront/catalog/internal/hash"
	"github.com/gostorefront/catalog/internal/models"
	"github.com/gostorefront/catalog/internal/repo"
)

const (
	DemoUserEmail    = "test.user@example.com"
	DemoUserName     = "Test User"
	DemoUserPassword = "password123"
)

// ProductIndexer mirrors seeded products into a search index.
type ProductIndexer interface {
	IndexProduct(ctx context.Context, p *models.Product) error
}

// EventPublisher emits domain events for seeded products.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

// DemoProducts returns the demo catalog. A fresh slice is returned so
// callers can mutate it freely.
func DemoProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Wireless Headphones",
			Description: "High-quality wireless headphones with noise cancellation. Perfect for music lovers and professionals.",
			Price:       99.99,
			ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&auto=format",
		},
		{
			Name:        "Smart Watch",
			Description: "Track your fitness, receive notifications, and more with this stylish smart watch.",
			Price:       199.99,
			ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&auto=format",
		},
		{
			Name:        "Laptop Backpack",
			Description: "Durable and stylish backpack with padded laptop compartment. Perfect for work or travel.",
			Price:       49.99,
			ImageURL:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500&auto=format",
		},
		{
			Name:        "Mechanical Keyboard",
			Description: "RGB mechanical keyboard with blue switches. Great for gaming and typing.",
			Price:       79.99,
			ImageURL:    "https://images.unsplash.com/photo-1595225476474-87563907a212?w=500&auto=format",
		},
		{
			Name:        "4K Monitor",
			Description: "27-inch 4K UHD monitor with HDR support. Perfect for creative work.",
			Price:       299.99,
			ImageURL:    "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=500&auto=format",
		},
		{
			Name:        "Wireless Mouse",
			Description: "Ergonomic wireless mouse with long battery life.",
			Price:       29.99,
			ImageURL:    "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&auto=format",
		},
	}
}

// Run seeds the demo user, their cart, and the demo catalog. Rerunning is
// idempotent: existing rows are left untouched and no duplicate events are
// published. indexer and publisher may be nil when those backends are not
// configured; the index mirror is refreshed on every run, while a
// product_created event is published only for newly inserted products.
// Run reports the number of products it created.
func Run(ctx context.Context, rp *repo.GormRepo, indexer ProductIndexer, publisher EventPublisher) (int, error) {
	pwHash, err := hash.HashPassword(DemoUserPassword)
	if err != nil {
		return 0, fmt.Errorf("hash demo password: %w", err)
	}

	user := models.User{
		Email:        DemoUserEmail,
		Name:         DemoUserName,
		PasswordHash: pwHash,
	}
	if err := rp.CreateUserIfNotExists(ctx, &user); err != nil && err != repo.ErrUserAlreadyExists {
		return 0, fmt.Errorf("seed user: %w", err)
	}

	if _, err := rp.GetOrCreateCart(ctx, user.ID); err != nil {
		return 0, fmt.Errorf("seed cart: %w", err)
	}

	created := 0
	products := DemoProducts()
	for i := range products {
		p := &products[i]
		inserted, err := rp.UpsertProductByName(ctx, p)
		if err != nil {
			return created, fmt.Errorf("seed product %q: %w", p.Name, err)
		}

		if indexer != nil {
			if err := indexer.IndexProduct(ctx, p); err != nil {
				return created, fmt.Errorf("index product %q: %w", p.Name, err)
			}
		}

		if !inserted {
			continue
		}
		created++

		if publisher != nil {
			event := map[string]any{
				"type":      "product_created",
				"productId": p.ID.String(),
				"name":      p.Name,
				"price":     p.Price,
			}
			if err := publisher.PublishEvent(ctx, events.TopicProductEvents, p.ID.String(), event); err != nil {
				return created, fmt.Errorf("publish product %q: %w", p.Name, err)
			}
		}
	}

	return created, nil
}
