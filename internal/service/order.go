package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"aquarium-storefront/internal/dto"
	"aquarium-storefront/internal/messaging"
	"aquarium-storefront/internal/model"
	"aquarium-storefront/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const publishTimeout = 5 * time.Second

type OrderService interface {
	CreateOrder(ctx context.Context, sessionID, memberID string, req *dto.CheckoutRequest) (*dto.CreateOrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	GetOrders(ctx context.Context) ([]*model.Order, error)
	GetMemberOrders(ctx context.Context, memberID string) ([]*model.Order, error)
}

type orderServiceImpl struct {
	cartRepo    repository.CartRepository
	orderRepo   repository.OrderRepository
	notifier    NotificationService
	publisher   messaging.Publisher
	ordersTopic string
	locks       *SessionLocks
	now         func() time.Time
}

func NewOrderService(
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	notifier NotificationService,
	publisher messaging.Publisher,
	ordersTopic string,
	locks *SessionLocks,
) OrderService {
	return &orderServiceImpl{
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		notifier:    notifier,
		publisher:   publisher,
		ordersTopic: ordersTopic,
		locks:       locks,
		now:         time.Now,
	}
}

// CreateOrder turns the session's cart into a pending order. Once the order
// is stored it stays stored: a failed notification, event or cart reset is
// logged and the order is still returned.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, sessionID, memberID string, req *dto.CheckoutRequest) (*dto.CreateOrderResponse, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	cart, err := loadCart(ctx, s.cartRepo, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.Empty() {
		return nil, fmt.Errorf("create order: %w", ErrEmptyCart)
	}

	id, err := newOrderID()
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	subtotal := cart.Total()
	shippingFee := req.ShippingFeeOrZero()

	order := &model.Order{
		ID:          id,
		MemberID:    memberID,
		Items:       cart.Clone(),
		Subtotal:    subtotal,
		ShippingFee: shippingFee,
		Total:       subtotal.Add(shippingFee),
		Customer:    req.Customer(),
		Status:      model.OrderPending,
		CreatedAt:   s.now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, persistenceError("create order", err)
	}

	slog.InfoContext(ctx, "order created",
		"order_id", order.ID,
		"items", len(order.Items),
		"total", order.Total.String(),
	)

	link, err := s.notifier.Dispatch(ctx, order)
	if err != nil {
		slog.ErrorContext(ctx, "dispatch order notification", "order_id", order.ID, "err", err)
	}

	s.publish(ctx, order)

	if err := s.cartRepo.Save(ctx, sessionID, nil); err != nil {
		slog.ErrorContext(ctx, "clear cart after order", "order_id", order.ID, "err", err)
	}

	return &dto.CreateOrderResponse{
		Order:   order,
		LineURL: link,
		Notice: &model.Notice{
			Level:   model.NoticeSuccess,
			Code:    model.CodeOrderCreated,
			Message: "訂單已成立！正在開啟 LINE...",
		},
	}, nil
}

func (s *orderServiceImpl) publish(ctx context.Context, order *model.Order) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := model.OrderPlaced{
		OrderID:  order.ID,
		MemberID: order.MemberID,
		Items:    order.Items,
		Total:    order.Total,
		PlacedAt: order.CreatedAt,
	}
	if err := s.publisher.PublishEvent(ctx, s.ordersTopic, order.ID, event); err != nil {
		slog.ErrorContext(ctx, "publish order placed", "order_id", order.ID, "err", err)
	}
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get order %s: %w", orderID, ErrOrderNotFound)
	}
	if err != nil {
		return nil, persistenceError("get order", err)
	}
	return order, nil
}

func (s *orderServiceImpl) GetOrders(ctx context.Context) ([]*model.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, persistenceError("list orders", err)
	}
	return orders, nil
}

func (s *orderServiceImpl) GetMemberOrders(ctx context.Context, memberID string) ([]*model.Order, error) {
	if memberID == "" {
		return nil, ErrNotLoggedIn
	}

	orders, err := s.orderRepo.FindByMember(ctx, memberID)
	if err != nil {
		return nil, persistenceError("list member orders", err)
	}
	return orders, nil
}

// newOrderID returns ORD- followed by a time ordered UUID.
func newOrderID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return "ORD-" + id.String(), nil
}
