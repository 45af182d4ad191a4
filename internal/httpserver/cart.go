package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gostorefront/catalog/internal/events"
	"github.com/gostorefront/catalog/internal/httpserver/transport"
	"github.com/gostorefront/catalog/internal/logging"
	"github.com/gostorefront/catalog/internal/service"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *events.Producer
}

func (h *CartHTTP) userID(c echo.Context) (uuid.UUID, error) {
	v := c.Get("user_id")
	s, ok := v.(string)
	if !ok || s == "" {
		return uuid.Nil, errors.New("unauthorized")
	}

	userID, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.New("unauthorized")
	}

	return userID, nil
}

func (h *CartHTTP) publish(c echo.Context, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx := c.Request().Context()
	key, _ := event["userId"].(string)
	if err := h.Producer.PublishEvent(ctx, events.TopicCartEvents, key, event); err != nil {
		logging.FromContext(ctx).Warn("cart_event_publish_failed", "error", err)
	}
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	userID, err := h.userID(c)
	if err != nil {
		l.Warn("get_cart_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	cart, err := h.Svc.GetCart(ctx, userID)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusOK, transport.NewCartResponse(cart))
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	userID, err := h.userID(c)
	if err != nil {
		l.Warn("add_to_cart_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	// quantity defaults to 1 when omitted; explicit zero or negative is a
	// schema violation.
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	productID, perr := uuid.Parse(req.ProductID)
	if req.ProductID == "" || perr != nil || quantity < 1 {
		l.Warn("add_to_cart_error", "status", 400)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "productId and quantity>=1 required"})
	}

	cart, err := h.Svc.AddItem(ctx, userID, productID, uint(quantity))
	if err != nil {
		return h.cartError(c, l, "add_to_cart_error", err)
	}

	h.publish(c, map[string]any{
		"type":      "cart_item_added",
		"userId":    userID.String(),
		"productId": productID.String(),
		"quantity":  quantity,
	})
	l.Info("add_to_cart_success")
	return c.JSON(http.StatusOK, transport.NewCartResponse(cart))
}

func (h *CartHTTP) SetQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.set_quantity")

	userID, err := h.userID(c)
	if err != nil {
		l.Warn("set_quantity_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req transport.SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_quantity_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	productID, perr := uuid.Parse(req.ProductID)
	if req.ProductID == "" || perr != nil || req.Quantity < 1 {
		l.Warn("set_quantity_error", "status", 400)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "productId and quantity>=1 required"})
	}

	cart, err := h.Svc.SetQuantity(ctx, userID, productID, uint(req.Quantity))
	if err != nil {
		return h.cartError(c, l, "set_quantity_error", err)
	}

	h.publish(c, map[string]any{
		"type":      "cart_quantity_set",
		"userId":    userID.String(),
		"productId": productID.String(),
		"quantity":  req.Quantity,
	})
	l.Info("set_quantity_success")
	return c.JSON(http.StatusOK, transport.NewCartResponse(cart))
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	userID, err := h.userID(c)
	if err != nil {
		l.Warn("remove_from_cart_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req transport.RemoveFromCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("remove_from_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	productID, perr := uuid.Parse(req.ProductID)
	if req.ProductID == "" || perr != nil {
		l.Warn("remove_from_cart_error", "status", 400)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "productId required"})
	}

	cart, err := h.Svc.RemoveItem(ctx, userID, productID)
	if err != nil {
		return h.cartError(c, l, "remove_from_cart_error", err)
	}

	h.publish(c, map[string]any{
		"type":      "cart_item_removed",
		"userId":    userID.String(),
		"productId": productID.String(),
	})
	l.Info("remove_from_cart_success")
	return c.JSON(http.StatusOK, transport.NewCartResponse(cart))
}

func (h *CartHTTP) cartError(c echo.Context, l *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		l.Warn(op, "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	case errors.Is(err, service.ErrNotFound):
		l.Warn(op, "status", 404, "error", err)
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	default:
		l.Error(op, "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
