package service

import (
	"context"
	"testing"

	"aquarium-storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsLoadDefaults(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, model.DefaultSettings(), f.settings.Load(context.Background()))
}

func TestSettingsLoadMergesOverDefaults(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.settingsRepo.Put(ctx, siteSettingsKey, `{"contact":{"phone":"02-2345-6789"}}`))

	settings := f.settings.Load(ctx)

	assert.Equal(t, "02-2345-6789", settings.Contact.Phone)
	assert.Equal(t, "@yasonok02061", settings.Contact.LineID)
	assert.Equal(t, "Aquarium Studio", settings.Site.Name)
}

func TestSettingsLoadCorruptFallsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.settingsRepo.Put(ctx, siteSettingsKey, `{"site":`))

	assert.Equal(t, model.DefaultSettings(), f.settings.Load(ctx))
}

func TestSettingsSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	settings := model.DefaultSettings()
	settings.Site.Name = "Guppy House"
	settings.Contact.Email = "shop@example.com"
	require.NoError(t, f.settings.Save(ctx, settings))

	assert.Equal(t, settings, f.settings.Load(ctx))
}

func TestSettingsLineHandle(t *testing.T) {
	settings := model.DefaultSettings()
	assert.Equal(t, "yasonok02061", settings.LineHandle())

	settings.Contact.LineID = " shop "
	assert.Equal(t, "shop", settings.LineHandle())
}
