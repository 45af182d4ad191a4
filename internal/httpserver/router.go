package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/gostorefront/catalog/internal/middleware/auth"
)

type Deps struct {
	CartHandler    *CartHTTP
	CatalogHandler *CatalogHTTP
	AuthHandler    *AuthHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	e.GET("/products", d.CatalogHandler.GetProducts)
	e.GET("/products/:id", d.CatalogHandler.GetProduct)

	e.POST("/auth/register", d.AuthHandler.Register)
	e.POST("/auth/login", d.AuthHandler.Login)

	mw := authmw.NewAuthMiddleware(d.JWTSecret)

	cart := e.Group("/cart")
	cart.Use(mw.RequireAuth)

	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PUT("", d.CartHandler.SetQuantity)
	cart.DELETE("", d.CartHandler.RemoveFromCart)
}
