package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductAvailable   ProductStatus = "available"
	ProductUnavailable ProductStatus = "unavailable"
)

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string          `gorm:"size:128;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Stock       int             `gorm:"not null" json:"stock"`
	Category    string          `gorm:"size:64;index" json:"category"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Video       string          `json:"video,omitempty"`
	Status      ProductStatus   `gorm:"size:32;not null;default:available" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

type ProductSort string

const (
	SortDefault   ProductSort = "default"
	SortPriceLow  ProductSort = "price-low"
	SortPriceHigh ProductSort = "price-high"
	SortName      ProductSort = "name"
	SortNewest    ProductSort = "newest"
)

// ProductFilter narrows a catalog listing. An empty or "all" category matches every product.
type ProductFilter struct {
	Category string
	Sort     ProductSort
}
