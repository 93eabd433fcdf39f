package handler

import (
	"net/http"
	"strconv"

	"aquarium-storefront/internal/dto"
	"aquarium-storefront/internal/middleware"
	"aquarium-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	cart, err := h.cartService.GetCart(ctx, middleware.CartSessionID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	req := dto.AddCartItemRequest{Quantity: 1}
	if err := c.Bind(&req); err != nil {
		return invalidRequest(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest(c, err)
	}

	cart, err := h.cartService.AddItem(ctx, middleware.CartSessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := productIDParam(c)
	if err != nil {
		return invalidRequest(c, err)
	}

	var req dto.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest(c, err)
	}

	cart, err := h.cartService.ChangeQuantity(ctx, middleware.CartSessionID(c), productID, req.Delta)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := productIDParam(c)
	if err != nil {
		return invalidRequest(c, err)
	}

	cart, err := h.cartService.RemoveItem(ctx, middleware.CartSessionID(c), productID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) Clear(c echo.Context) error {
	ctx := c.Request().Context()

	cart, err := h.cartService.Clear(ctx, middleware.CartSessionID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) Total(c echo.Context) error {
	ctx := c.Request().Context()

	total, err := h.cartService.Total(ctx, middleware.CartSessionID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, &dto.CartTotalResponse{Total: total})
}

func (h *CartHandler) Count(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := h.cartService.Count(ctx, middleware.CartSessionID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, &dto.CartCountResponse{Count: count})
}

func productIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("productId"), 10, 64)
}
