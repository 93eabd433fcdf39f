package service

import (
	"context"
	"errors"
	"fmt"

	"aquarium-storefront/internal/dto"
	"aquarium-storefront/internal/model"
	"aquarium-storefront/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*dto.CartResponse, error)
	AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (*dto.CartResponse, error)
	ChangeQuantity(ctx context.Context, sessionID string, productID int64, delta int) (*dto.CartResponse, error)
	RemoveItem(ctx context.Context, sessionID string, productID int64) (*dto.CartResponse, error)
	Clear(ctx context.Context, sessionID string) (*dto.CartResponse, error)
	Total(ctx context.Context, sessionID string) (decimal.Decimal, error)
	Count(ctx context.Context, sessionID string) (int, error)
}

type cartServiceImpl struct {
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	locks       *SessionLocks
}

func NewCartService(
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
	locks *SessionLocks,
) CartService {
	return &cartServiceImpl{
		productRepo: productRepo,
		cartRepo:    cartRepo,
		locks:       locks,
	}
}

func (s *cartServiceImpl) GetCart(ctx context.Context, sessionID string) (*dto.CartResponse, error) {
	cart, err := loadCart(ctx, s.cartRepo, sessionID)
	if err != nil {
		return nil, err
	}
	return cartResponse(cart, nil), nil
}

// AddItem puts quantity units of a product in the cart. Adding more of a
// product already in the cart is capped at the stock seen when it was first
// added, with a warning notice.
func (s *cartServiceImpl) AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (*dto.CartResponse, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("add item %d: %w", productID, ErrInvalidQuantity)
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	product, err := s.productRepo.FindByID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("add item %d: %w", productID, ErrProductNotFound)
	}
	if err != nil {
		return nil, persistenceError("find product", err)
	}
	if !product.InStock() {
		return nil, fmt.Errorf("add item %d: %w", productID, ErrOutOfStock)
	}

	cart, err := loadCart(ctx, s.cartRepo, sessionID)
	if err != nil {
		return nil, err
	}

	clamped := cart.Add(model.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  quantity,
		MaxStock:  product.Stock,
	})

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	notice := &model.Notice{
		Level:   model.NoticeSuccess,
		Code:    model.CodeItemAdded,
		Message: fmt.Sprintf("已將 %s 加入購物車", product.Name),
	}
	if clamped {
		item, _ := cart.Find(product.ID)
		notice = stockCeilingNotice(item.MaxStock)
	}

	return cartResponse(cart, notice), nil
}

// ChangeQuantity is a no-op for products not in the cart. The cart is saved
// on every call.
func (s *cartServiceImpl) ChangeQuantity(ctx context.Context, sessionID string, productID int64, delta int) (*dto.CartResponse, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	cart, err := loadCart(ctx, s.cartRepo, sessionID)
	if err != nil {
		return nil, err
	}

	_, _, clamped := cart.ChangeQuantity(productID, delta)

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	var notice *model.Notice
	if clamped {
		item, _ := cart.Find(productID)
		notice = stockCeilingNotice(item.MaxStock)
	}

	return cartResponse(cart, notice), nil
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, sessionID string, productID int64) (*dto.CartResponse, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	cart, err := loadCart(ctx, s.cartRepo, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Remove(productID)

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	return cartResponse(cart, nil), nil
}

func (s *cartServiceImpl) Clear(ctx context.Context, sessionID string) (*dto.CartResponse, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	cart := model.NewCart(nil)
	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	return cartResponse(cart, nil), nil
}

func (s *cartServiceImpl) Total(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	cart, err := loadCart(ctx, s.cartRepo, sessionID)
	if err != nil {
		return decimal.Zero, err
	}
	return cart.Total(), nil
}

func (s *cartServiceImpl) Count(ctx context.Context, sessionID string) (int, error) {
	cart, err := loadCart(ctx, s.cartRepo, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

func (s *cartServiceImpl) save(ctx context.Context, sessionID string, cart *model.Cart) error {
	if err := s.cartRepo.Save(ctx, sessionID, cart.Items); err != nil {
		return persistenceError("save cart", err)
	}
	return nil
}

func loadCart(ctx context.Context, cartRepo repository.CartRepository, sessionID string) (*model.Cart, error) {
	items, err := cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, persistenceError("load cart", err)
	}
	return model.NewCart(items), nil
}

func cartResponse(cart *model.Cart, notice *model.Notice) *dto.CartResponse {
	items := cart.Clone()
	if items == nil {
		items = []model.CartItem{}
	}
	return &dto.CartResponse{
		Items:  items,
		Count:  cart.Count(),
		Total:  cart.Total(),
		Notice: notice,
	}
}

func stockCeilingNotice(maxStock int) *model.Notice {
	return &model.Notice{
		Level:   model.NoticeWarning,
		Code:    model.CodeStockCeilingReached,
		Message: fmt.Sprintf("庫存不足，最高可購買 %d 隻", maxStock),
	}
}
