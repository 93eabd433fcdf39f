package handler

import (
	"net/http"
	"strconv"

	"aquarium-storefront/internal/model"
	"aquarium-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	catalogService service.CatalogService
}

func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	filter := model.ProductFilter{
		Category: c.QueryParam("category"),
		Sort:     model.ProductSort(c.QueryParam("sort")),
	}

	products, err := h.catalogService.ListProducts(ctx, filter)
	if err != nil {
		return respondError(c, err)
	}

	if products == nil {
		products = []*model.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, service.ErrProductNotFound)
	}

	product, err := h.catalogService.GetProduct(ctx, productID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}
