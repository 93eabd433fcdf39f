package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"aquarium-storefront/internal/client"
	"aquarium-storefront/internal/model"
	"aquarium-storefront/internal/repository"
)

const handoffTimeout = 15 * time.Second

type NotificationService interface {
	// Dispatch archives the order message and schedules the LINE hand-off.
	// It returns the deep link without waiting for the hand-off.
	Dispatch(ctx context.Context, order *model.Order) (string, error)
	Records(ctx context.Context) ([]*model.NotificationRecord, error)
	// Close waits for scheduled hand-offs.
	Close()
}

type notificationServiceImpl struct {
	notificationRepo repository.NotificationRepository
	settingsService  SettingsService
	lineClient       client.LineClient
	location         *time.Location
	delay            time.Duration
	now              func() time.Time

	pending sync.WaitGroup
}

func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	settingsService SettingsService,
	lineClient client.LineClient,
	location *time.Location,
	delay time.Duration,
) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		settingsService:  settingsService,
		lineClient:       lineClient,
		location:         location,
		delay:            delay,
		now:              time.Now,
	}
}

func (s *notificationServiceImpl) Dispatch(ctx context.Context, order *model.Order) (string, error) {
	settings := s.settingsService.Load(ctx)
	message := FormatOrderMessage(order, settings, s.location)
	link := BuildLineLink(settings.LineHandle(), message)

	err := s.notificationRepo.Create(ctx, &model.NotificationRecord{
		OrderID:   order.ID,
		Message:   message,
		Link:      link,
		CreatedAt: s.now(),
	})
	if err != nil {
		return "", persistenceError("archive notification", err)
	}

	s.schedule(order.ID, link)
	return link, nil
}

func (s *notificationServiceImpl) schedule(orderID, link string) {
	s.pending.Add(1)
	time.AfterFunc(s.delay, func() {
		defer s.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), handoffTimeout)
		defer cancel()

		if err := s.lineClient.Open(ctx, link); err != nil {
			slog.Warn("line hand-off failed", "order_id", orderID, "err", err)
		}
	})
}

func (s *notificationServiceImpl) Records(ctx context.Context) ([]*model.NotificationRecord, error) {
	records, err := s.notificationRepo.FindAll(ctx)
	if err != nil {
		return nil, persistenceError("list notifications", err)
	}
	return records, nil
}

func (s *notificationServiceImpl) Close() {
	s.pending.Wait()
}
