package handler

import (
	"net/http"

	"aquarium-storefront/internal/dto"
	"aquarium-storefront/internal/middleware"
	"aquarium-storefront/internal/model"
	"aquarium-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type MemberHandler struct {
	memberService service.MemberService
	orderService  service.OrderService
}

func NewMemberHandler(memberService service.MemberService, orderService service.OrderService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		orderService:  orderService,
	}
}

func (h *MemberHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest(c, err)
	}

	result, err := h.memberService.Login(ctx, c.Param("method"), req.Credential)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// Logout has nothing to revoke: session tokens are dropped by the client.
func (h *MemberHandler) Logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func (h *MemberHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	member, err := h.memberService.Profile(ctx, middleware.MemberID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) MyOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.GetMemberOrders(ctx, middleware.MemberID(c))
	if err != nil {
		return respondError(c, err)
	}

	if orders == nil {
		orders = []*model.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}
