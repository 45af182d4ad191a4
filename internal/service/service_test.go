package service_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gostorefront/catalog/internal/models"
	"github.com/gostorefront/catalog/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	))

	return db
}

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	return repo.NewGormRepo(newTestDB(t))
}

func seedProduct(t *testing.T, db *gorm.DB, name, description string, price float64, createdAt time.Time) models.Product {
	t.Helper()

	p := models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    "https://example.com/" + strings.ReplaceAll(strings.ToLower(name), " ", "-") + ".jpg",
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}
