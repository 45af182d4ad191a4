package repo

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/gostorefront/catalog/internal/models"
)

func (r *GormRepo) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchProducts matches q as a case-insensitive substring of name or
// description and returns the newest-created page plus the total count.
// An empty q matches everything.
func (r *GormRepo) SearchProducts(ctx context.Context, q string, offset, limit int) (int64, []models.Product, error) {
	query := r.DB.WithContext(ctx).Model(&models.Product{})
	if q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.Product, 0, limit)
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

// UpsertProductByName keeps the seeder idempotent: a product is identified
// by its name across runs. It reports whether a new row was inserted.
func (r *GormRepo) UpsertProductByName(ctx context.Context, prod *models.Product) (bool, error) {
	tx := r.DB.WithContext(ctx).
		Where(models.Product{Name: prod.Name}).
		Attrs(*prod).
		FirstOrCreate(prod)
	return tx.RowsAffected > 0, tx.Error
}
