package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gostorefront/catalog/internal/httpserver/transport"
	"github.com/gostorefront/catalog/internal/logging"
	"github.com/gostorefront/catalog/internal/service"
	"github.com/gostorefront/catalog/internal/util"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list")

	q := c.QueryParam("q")
	page := util.ParseIntDefault(c.QueryParam("page"), 1)

	result, err := h.Svc.List(ctx, q, page)
	if err != nil {
		l.Error("get_products_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	l.Info("get_products_success", "total", result.Total)
	return c.JSON(http.StatusOK, transport.ListResponse{
		Data: result.Products,
		Meta: transport.ListMeta{
			Page:       result.Page,
			PageSize:   result.PageSize,
			Total:      result.Total,
			TotalPages: result.TotalPages,
			HasPrev:    result.Page > 1,
			HasNext:    int64(result.Page) < result.TotalPages,
		},
	})
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_product")

	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_product_failed", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("get_product_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	return c.JSON(http.StatusOK, product)
}
