package handler

import (
	"net/http"

	"aquarium-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.settingsService.Load(c.Request().Context()))
}

// SaveSettings accepts partial documents: missing fields keep their current value.
func (h *SettingsHandler) SaveSettings(c echo.Context) error {
	ctx := c.Request().Context()

	settings := h.settingsService.Load(ctx)
	if err := c.Bind(settings); err != nil {
		return invalidRequest(c, err)
	}
	if err := c.Validate(settings); err != nil {
		return invalidRequest(c, err)
	}

	if err := h.settingsService.Save(ctx, settings); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, settings)
}
