package repository

import (
	"context"
	"time"

	"aquarium-storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	Get(ctx context.Context, key string) (*model.SettingEntry, error)
	Put(ctx context.Context, key, value string) error
}

type settingsRepoImpl struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepoImpl{
		db: db,
	}
}

func (r *settingsRepoImpl) Get(ctx context.Context, key string) (*model.SettingEntry, error) {
	var entry model.SettingEntry
	err := r.db.WithContext(ctx).
		Where("`key` = ?", key).
		First(&entry).Error
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *settingsRepoImpl) Put(ctx context.Context, key, value string) error {
	entry := &model.SettingEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": entry.UpdatedAt,
		}),
	}).Create(entry).Error
}
