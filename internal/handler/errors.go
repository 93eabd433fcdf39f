package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"aquarium-storefront/internal/dto"
	"aquarium-storefront/internal/model"
	"aquarium-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type errorMapping struct {
	err     error
	status  int
	code    string
	message string
}

// errorMappings is checked in order, first match wins.
var errorMappings = []errorMapping{
	{service.ErrProductNotFound, http.StatusNotFound, model.CodeProductNotFound, "找不到商品"},
	{service.ErrOutOfStock, http.StatusConflict, model.CodeOutOfStock, "商品已缺貨，無法購買"},
	{service.ErrOrderNotFound, http.StatusNotFound, model.CodeOrderNotFound, "找不到訂單"},
	{service.ErrEmptyCart, http.StatusUnprocessableEntity, model.CodeEmptyCart, "購物車是空的"},
	{service.ErrInvalidQuantity, http.StatusBadRequest, model.CodeInvalidQuantity, "數量必須至少為 1"},
	{service.ErrPersistence, http.StatusServiceUnavailable, model.CodePersistenceFailure, "儲存失敗，請稍後再試"},
	{service.ErrUnsupportedLoginMethod, http.StatusBadRequest, model.CodeUnsupportedMethod, "不支援的登入方式"},
	{service.ErrInvalidCredential, http.StatusUnauthorized, model.CodeInvalidCredential, "登入失敗"},
	{service.ErrNotLoggedIn, http.StatusUnauthorized, model.CodeNotLoggedIn, "請先登入"},
}

// respondError writes err as a notice. Errors without a mapping are left to
// echo's error handler.
func respondError(c echo.Context, err error) error {
	for _, m := range errorMappings {
		if !errors.Is(err, m.err) {
			continue
		}

		if m.status >= http.StatusInternalServerError {
			slog.ErrorContext(c.Request().Context(), "request failed", "path", c.Path(), "err", err)
		}
		return c.JSON(m.status, &dto.ErrorResponse{
			Notice: &model.Notice{
				Level:   model.NoticeError,
				Code:    m.code,
				Message: m.message,
			},
		})
	}
	return err
}

func invalidRequest(c echo.Context, err error) error {
	slog.DebugContext(c.Request().Context(), "invalid request", "path", c.Path(), "err", err)
	return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{
		Notice: &model.Notice{
			Level:   model.NoticeError,
			Code:    model.CodeInvalidRequest,
			Message: "請填寫完整資料",
		},
	})
}
