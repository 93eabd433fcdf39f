package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"aquarium-storefront/internal/model"
	"aquarium-storefront/internal/repository"

	"gorm.io/gorm"
)

const siteSettingsKey = "siteSettings"

type SettingsService interface {
	Load(ctx context.Context) *model.Settings
	Save(ctx context.Context, settings *model.Settings) error
}

type settingsServiceImpl struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsServiceImpl{
		settingsRepo: settingsRepo,
	}
}

// Load never fails: stored fields are laid over the defaults and anything
// unreadable falls back to the defaults.
func (s *settingsServiceImpl) Load(ctx context.Context) *model.Settings {
	settings := model.DefaultSettings()

	entry, err := s.settingsRepo.Get(ctx, siteSettingsKey)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return settings
	}
	if err != nil {
		slog.ErrorContext(ctx, "load settings", "err", err)
		return settings
	}

	if err := json.Unmarshal([]byte(entry.Value), settings); err != nil {
		slog.ErrorContext(ctx, "decode settings", "err", err)
		return model.DefaultSettings()
	}

	return settings
}

func (s *settingsServiceImpl) Save(ctx context.Context, settings *model.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	if err := s.settingsRepo.Put(ctx, siteSettingsKey, string(data)); err != nil {
		return persistenceError("save settings", err)
	}

	return nil
}
