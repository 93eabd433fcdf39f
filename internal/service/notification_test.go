package service

import (
	"context"
	"testing"
	"time"

	"aquarium-storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationDispatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	link, err := f.notifier.Dispatch(ctx, sampleOrder())
	require.NoError(t, err)
	assert.Contains(t, link, "https://line.me/R/ti/p/@yasonok02061?")

	records, err := f.notifier.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ORD-1", records[0].OrderID)
	assert.Equal(t, link, records[0].Link)
	assert.Contains(t, records[0].Message, "📅 時間: 2026/2/5 下午3:04:05")

	f.notifier.Close()
	assert.Equal(t, []string{link}, f.line.opened())
}

func TestNotificationDispatchUsesSavedLineID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	settings := model.DefaultSettings()
	settings.Contact.LineID = "@newshop"
	require.NoError(t, f.settings.Save(ctx, settings))

	link, err := f.notifier.Dispatch(ctx, sampleOrder())
	require.NoError(t, err)
	assert.Contains(t, link, "https://line.me/R/ti/p/@newshop?")
}

func TestNotificationHandoffIsDeferred(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	notifier := NewNotificationService(f.notificationRepo, f.settings, f.line, time.UTC, 50*time.Millisecond)

	_, err := notifier.Dispatch(ctx, sampleOrder())
	require.NoError(t, err)
	assert.Empty(t, f.line.opened(), "hand-off runs after the delay")

	notifier.Close()
	assert.Len(t, f.line.opened(), 1)
}

func TestNotificationHandoffFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.line.err = assert.AnError

	link, err := f.notifier.Dispatch(ctx, sampleOrder())
	require.NoError(t, err)
	assert.NotEmpty(t, link)

	f.notifier.Close()
	assert.Len(t, f.line.opened(), 1)
}
