package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"aquarium-storefront/internal/model"
	"aquarium-storefront/internal/repository"
	"aquarium-storefront/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingLineClient struct {
	mu    sync.Mutex
	links []string
	err   error
}

func (c *recordingLineClient) Open(ctx context.Context, link string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.links = append(c.links, link)
	return c.err
}

func (c *recordingLineClient) opened() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.links...)
}

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	events []any
	err    error
}

func (p *recordingPublisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

type failingNotifier struct{}

func (failingNotifier) Dispatch(ctx context.Context, order *model.Order) (string, error) {
	return "", errors.New("line unreachable")
}

func (failingNotifier) Records(ctx context.Context) ([]*model.NotificationRecord, error) {
	return nil, nil
}

func (failingNotifier) Close() {}

type failingCartRepo struct{}

func (failingCartRepo) Get(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	return nil, errors.New("disk full")
}

func (failingCartRepo) Save(ctx context.Context, sessionID string, items []model.CartItem) error {
	return errors.New("disk full")
}

type fixture struct {
	db               *gorm.DB
	productRepo      repository.ProductRepository
	cartRepo         repository.CartRepository
	orderRepo        repository.OrderRepository
	notificationRepo repository.NotificationRepository
	settingsRepo     repository.SettingsRepository
	locks            *SessionLocks
	line             *recordingLineClient
	publisher        *recordingPublisher

	carts    CartService
	settings SettingsService
	notifier NotificationService
	orders   OrderService
}

// newFixture wires the services over an in-memory database seeded with the
// built-in catalog.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	f := &fixture{
		db:               db,
		productRepo:      repository.NewProductRepository(db),
		cartRepo:         repository.NewCartRepository(db),
		orderRepo:        repository.NewOrderRepository(db),
		notificationRepo: repository.NewNotificationRepository(db),
		settingsRepo:     repository.NewSettingsRepository(db),
		locks:            NewSessionLocks(),
		line:             &recordingLineClient{},
		publisher:        &recordingPublisher{},
	}
	require.NoError(t, f.productRepo.Seed(context.Background(), DefaultProducts(time.Now())))

	f.carts = NewCartService(f.productRepo, f.cartRepo, f.locks)
	f.settings = NewSettingsService(f.settingsRepo)
	f.notifier = NewNotificationService(f.notificationRepo, f.settings, f.line, time.FixedZone("CST", 8*60*60), 0)
	f.orders = NewOrderService(f.cartRepo, f.orderRepo, f.notifier, f.publisher, "orders.placed", f.locks)
	t.Cleanup(f.notifier.Close)

	return f
}

func (f *fixture) withNotifier(notifier NotificationService) *fixture {
	f.notifier = notifier
	f.orders = NewOrderService(f.cartRepo, f.orderRepo, notifier, f.publisher, "orders.placed", f.locks)
	return f
}
