package testutil

import (
	"context"
	"fmt"
	"testing"

	"aquarium-storefront/internal/client"
	"aquarium-storefront/internal/config"
	"aquarium-storefront/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB opens a private in-memory SQLite database with the schema migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := client.InitDBClient(&config.Database{
		Driver: "sqlite",
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.CloseDBClient(db)
	})
	return db
}

// SeedProducts stores products directly, bypassing catalog bootstrap.
func SeedProducts(t *testing.T, db *gorm.DB, products ...model.Product) {
	t.Helper()
	require.NoError(t, db.WithContext(context.Background()).Create(&products).Error)
}

func Product(id int64, name string, price int64, stock int) model.Product {
	return model.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.NewFromInt(price),
		Stock:    stock,
		Category: "測試",
		Status:   model.ProductAvailable,
	}
}
