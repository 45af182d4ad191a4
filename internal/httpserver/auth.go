package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gostorefront/catalog/internal/httpserver/transport"
	"github.com/gostorefront/catalog/internal/logging"
	"github.com/gostorefront/catalog/internal/service"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	user, err := h.Svc.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("register_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password required"})
		case errors.Is(err, service.ErrConflict):
			l.Warn("register_error", "status", 409)
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		default:
			l.Error("register_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
		}
	}

	l.Info("register_success")
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	result, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			l.Warn("login_error", "status", 401)
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		l.Error("login_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	c.SetCookie(&http.Cookie{
		Name:     "accessToken",
		Value:    result.AccessToken,
		Path:     "/",
		Expires:  result.AccessExp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	l.Info("login_success")
	return c.JSON(http.StatusOK, transport.LoginResponse{AccessToken: result.AccessToken})
}
