package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"aquarium-storefront/internal/model"
	"aquarium-storefront/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const defaultProductImage = "images/products/default-guppy.svg"

type CatalogService interface {
	Bootstrap(ctx context.Context, seedFile string) (int, error)
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error)
	GetProduct(ctx context.Context, productID int64) (*model.Product, error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
	now         func() time.Time
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
		now:         time.Now,
	}
}

// Bootstrap seeds an empty catalog from seedFile, falling back to the
// built-in products when the file is missing or unusable. It returns how many
// products were seeded.
func (s *catalogServiceImpl) Bootstrap(ctx context.Context, seedFile string) (int, error) {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return 0, persistenceError("count products", err)
	}
	if count > 0 {
		return 0, nil
	}

	products, err := loadSeedFile(seedFile)
	if err != nil {
		slog.InfoContext(ctx, "using built-in catalog", "seed_file", seedFile, "reason", err)
		products = DefaultProducts(s.now())
	}

	if err := s.productRepo.Seed(ctx, products); err != nil {
		return 0, persistenceError("seed products", err)
	}

	slog.InfoContext(ctx, "catalog seeded", "products", len(products))
	return len(products), nil
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, persistenceError("list products", err)
	}
	return products, nil
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, productID int64) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get product %d: %w", productID, ErrProductNotFound)
	}
	if err != nil {
		return nil, persistenceError("get product", err)
	}
	return product, nil
}

type seedDocument struct {
	Products []model.Product `json:"products"`
}

func loadSeedFile(path string) ([]model.Product, error) {
	if path == "" {
		return nil, errors.New("no seed file configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc seedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	products := make([]model.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		if p.ID <= 0 || p.Name == "" || p.Price.IsNegative() {
			return nil, fmt.Errorf("invalid product %d %q in seed file", p.ID, p.Name)
		}
		if p.Stock < 0 {
			p.Stock = 0
		}
		if p.Status == "" {
			p.Status = model.ProductAvailable
		}
		if p.Image == "" {
			p.Image = defaultProductImage
		}
		products = append(products, p)
	}
	if len(products) == 0 {
		return nil, errors.New("seed file has no products")
	}

	return products, nil
}

// DefaultProducts is the built-in catalog used when no seed file is available.
func DefaultProducts(now time.Time) []model.Product {
	return []model.Product{
		{
			ID:          1,
			Name:        "全紅孔雀魚",
			Price:       decimal.NewFromInt(200),
			Stock:       15,
			Category:    "紅色系",
			Description: "經典熱門品種，顏色鮮豔，繁殖穩定，適合新手",
			Status:      model.ProductAvailable,
			Image:       defaultProductImage,
			CreatedAt:   now,
		},
		{
			ID:          2,
			Name:        "黑禮服孔雀魚",
			Price:       decimal.NewFromInt(150),
			Stock:       8,
			Category:    "黑色系",
			Description: "優雅黑色禮服，經典款式，適應力強",
			Status:      model.ProductAvailable,
			Image:       defaultProductImage,
			CreatedAt:   now,
		},
		{
			ID:          3,
			Name:        "馬賽克孔雀魚",
			Price:       decimal.NewFromInt(180),
			Stock:       12,
			Category:    "特殊系",
			Description: "色彩繽紛如馬賽克，觀賞性極高",
			Status:      model.ProductAvailable,
			Image:       defaultProductImage,
			CreatedAt:   now,
		},
		{
			ID:          4,
			Name:        "蛇王孔雀魚",
			Price:       decimal.NewFromInt(300),
			Stock:       5,
			Category:    "稀有系",
			Description: "蛇紋圖案獨特美觀，稀有品種",
			Status:      model.ProductAvailable,
			Image:       defaultProductImage,
			CreatedAt:   now,
		},
	}
}
