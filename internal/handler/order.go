package handler

import (
	"net/http"

	"aquarium-storefront/internal/dto"
	"aquarium-storefront/internal/middleware"
	"aquarium-storefront/internal/model"
	"aquarium-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService        service.OrderService
	notificationService service.NotificationService
}

func NewOrderHandler(orderService service.OrderService, notificationService service.NotificationService) *OrderHandler {
	return &OrderHandler{
		orderService:        orderService,
		notificationService: notificationService,
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest(c, err)
	}

	result, err := h.orderService.CreateOrder(ctx, middleware.CartSessionID(c), middleware.MemberID(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *OrderHandler) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.GetOrders(ctx)
	if err != nil {
		return respondError(c, err)
	}

	if orders == nil {
		orders = []*model.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderService.GetOrder(ctx, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetNotifications(c echo.Context) error {
	ctx := c.Request().Context()

	records, err := h.notificationService.Records(ctx)
	if err != nil {
		return respondError(c, err)
	}

	if records == nil {
		records = []*model.NotificationRecord{}
	}
	return c.JSON(http.StatusOK, records)
}
