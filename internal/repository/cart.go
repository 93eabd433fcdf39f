package repository

import (
	"context"

	"aquarium-storefront/internal/model"

	"gorm.io/gorm"
)

// CartRepository stores the items of one cart session as a unit: Save
// replaces the whole cart and readers never observe a partial write.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) ([]model.CartItem, error)
	Save(ctx context.Context, sessionID string, items []model.CartItem) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) Get(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	var lines []*model.CartLine
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("position ASC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return nil, nil
	}

	items := make([]model.CartItem, len(lines))
	for i, line := range lines {
		items[i] = model.CartItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Image:     line.Image,
			Quantity:  line.Quantity,
			MaxStock:  line.MaxStock,
		}
	}

	return items, nil
}

func (r *cartRepoImpl) Save(ctx context.Context, sessionID string, items []model.CartItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&model.CartLine{}).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}

		lines := make([]*model.CartLine, len(items))
		for i, item := range items {
			lines[i] = &model.CartLine{
				SessionID: sessionID,
				ProductID: item.ProductID,
				Position:  i,
				Name:      item.Name,
				Price:     item.Price,
				Image:     item.Image,
				Quantity:  item.Quantity,
				MaxStock:  item.MaxStock,
			}
		}

		return tx.Create(&lines).Error
	})
}
