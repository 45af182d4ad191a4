package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gostorefront/catalog/internal/models"
	"github.com/gostorefront/catalog/internal/repo"
	"github.com/gostorefront/catalog/internal/util"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

type ListResult struct {
	Products   []models.Product
	Total      int64
	Page       int
	PageSize   int
	TotalPages int64
}

// List pages the catalog, matching query as a case-insensitive substring
// of name or description. Pages below 1 normalize to 1; a page past the
// end returns an empty slice with the totals unchanged.
func (s *CatalogService) List(ctx context.Context, query string, page int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	offset, limit := util.Calculate(page, util.DefaultPageSize)

	total, items, err := s.Repo.SearchProducts(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Products:   items,
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: util.TotalPages(total, limit),
	}, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}
