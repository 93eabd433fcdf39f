package repository

import (
	"context"

	"aquarium-storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Seed(ctx context.Context, products []model.Product) error
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, productID int64) (*model.Product, error)
	FindAll(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) Seed(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}

func (r *productRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID int64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) FindAll(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error) {
	query := r.db.WithContext(ctx)
	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("category = ?", filter.Category)
	}

	switch filter.Sort {
	case model.SortPriceLow:
		query = query.Order("price ASC").Order("id ASC")
	case model.SortPriceHigh:
		query = query.Order("price DESC").Order("id ASC")
	case model.SortName:
		query = query.Order("name ASC").Order("id ASC")
	case model.SortNewest:
		query = query.Order("created_at DESC").Order("id ASC")
	default:
		query = query.Order("id ASC")
	}

	var products []*model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}
