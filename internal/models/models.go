package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"primaryKey"       json:"id"`
	Email        string    `gorm:"unique;not null"  json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (User) TableName() string {
	return "users"
}

// Product is immutable from the storefront: rows are only created by the
// seeder, no update path is exposed over HTTP.
type Product struct {
	ID          uuid.UUID `gorm:"primaryKey"              json:"id"`
	Name        string    `gorm:"not null"                json:"name"`
	Description string    `gorm:"not null"                json:"description"`
	Price       float64   `gorm:"not null;check:price>=0" json:"price"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `gorm:"index"                   json:"createdAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// Cart is 1:1 with User, created lazily on first read or first add.
type Cart struct {
	ID        uuid.UUID  `gorm:"primaryKey"           json:"id"`
	UserID    uuid.UUID  `gorm:"uniqueIndex;not null" json:"userId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Items     []CartItem `gorm:"foreignKey:CartID"    json:"items"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (Cart) TableName() string {
	return "carts"
}

type CartItem struct {
	ID        uuid.UUID `gorm:"primaryKey"                            json:"id"`
	CartID    uuid.UUID `gorm:"uniqueIndex:idx_cart_product;not null" json:"cartId"`
	ProductID uuid.UUID `gorm:"uniqueIndex:idx_cart_product;not null" json:"productId"`
	Quantity  uint      `gorm:"default:1;check:quantity>0"            json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	Product   Product   `gorm:"foreignKey:ProductID"                  json:"product"`
}

func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (CartItem) TableName() string {
	return "cart_items"
}
