// Package fixture is an in-process implementation of the storefront REST
// contract, used by integration tests and as a local playground for the CLI.
// It is a test double, not the real backend.
package fixture

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName     string `gorm:"not null"                 json:"fullName"`
	Email        string `gorm:"unique;not null"          json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null"          json:"name"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl"`
	CategoryID  uint    `gorm:"index"                    json:"categoryId"`
}

type CartItem struct {
	ID        uint `gorm:"primaryKey"                 json:"id"`
	UserID    uint `gorm:"index;not null"             json:"user_id"`
	ProductID uint `gorm:"not null"                   json:"product_id"`
	Quantity  int  `gorm:"default:1;check:quantity>0" json:"quantity"`
}

type WishlistItem struct {
	ID        uint `gorm:"primaryKey"     json:"id"`
	UserID    uint `gorm:"index;not null" json:"user_id"`
	ProductID uint `gorm:"not null"       json:"product_id"`
}

type Address struct {
	ID           uint   `gorm:"primaryKey"     json:"id"`
	UserID       uint   `gorm:"index;not null" json:"-"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
}

type Order struct {
	ID            uint      `gorm:"primaryKey"     json:"id"`
	UserID        uint      `gorm:"index;not null" json:"-"`
	AddressID     uint      `json:"-"`
	TotalAmount   float64   `gorm:"not null"       json:"totalAmount"`
	Status        string    `gorm:"not null"       json:"status"`
	PaymentMethod string    `json:"-"`
	CreatedAt     time.Time `json:"orderDate"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey"     json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"-"`
	ProductID uint    `gorm:"not null"       json:"-"`
	Price     float64 `gorm:"not null"       json:"price"`
	Quantity  int     `gorm:"not null"       json:"quantity"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey"     json:"id"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	ProductID uint      `gorm:"index;not null" json:"productId"`
	Rating    int       `gorm:"not null"       json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
