package transport

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gostorefront/catalog/internal/models"
)

type AddToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

type SetQuantityRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type RemoveFromCartRequest struct {
	ProductID string `json:"productId"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

type CartProduct struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	ImageURL string    `json:"imageUrl"`
}

type CartItemResponse struct {
	ID       uuid.UUID   `json:"id"`
	Quantity uint        `json:"quantity"`
	Product  CartProduct `json:"product"`
	Subtotal float64     `json:"subtotal"`
}

type CartResponse struct {
	ID    uuid.UUID          `json:"id"`
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

// NewCartResponse flattens a loaded cart into the wire format. Money math
// runs on decimals so line subtotals and the total stay cent-exact.
func NewCartResponse(cart *models.Cart) CartResponse {
	resp := CartResponse{
		ID:    cart.ID,
		Items: make([]CartItemResponse, 0, len(cart.Items)),
	}

	total := decimal.Zero
	for _, item := range cart.Items {
		price := decimal.NewFromFloat(item.Product.Price)
		subtotal := price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)

		resp.Items = append(resp.Items, CartItemResponse{
			ID:       item.ID,
			Quantity: item.Quantity,
			Product: CartProduct{
				ID:       item.Product.ID,
				Name:     item.Product.Name,
				Price:    item.Product.Price,
				ImageURL: item.Product.ImageURL,
			},
			Subtotal: subtotal.Round(2).InexactFloat64(),
		})
	}

	resp.Total = total.Round(2).InexactFloat64()
	return resp
}

type ListMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
	HasPrev    bool  `json:"hasPrev"`
	HasNext    bool  `json:"hasNext"`
}

type ListResponse struct {
	Data []models.Product `json:"data"`
	Meta ListMeta         `json:"meta"`
}
