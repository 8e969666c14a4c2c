package api

import (
	"net/url"
	"strconv"
	"time"
)

const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

type User struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

// LoginResponse is the login/admin-login payload: a bearer token with the
// user record flattened alongside it. The whole thing is persisted under
// the user_data key.
type LoginResponse struct {
	Token string `json:"token"`
	User
}

type SignupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

type Product struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Stock         int     `json:"stock"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	CategoryID    uint    `json:"categoryId,omitempty"`
	CategoryName  string  `json:"categoryName,omitempty"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CartItem struct {
	ID       uint    `json:"id"`
	Product  Product `json:"product"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Cart struct {
	ID         uint       `json:"id"`
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
}

type WishlistEntry struct {
	ID      uint    `json:"id"`
	Product Product `json:"product"`
}

type Address struct {
	ID           uint   `json:"id"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
}

const (
	OrderProcessing = "PROCESSING"
	OrderShipped    = "SHIPPED"
	OrderDelivered  = "DELIVERED"
	OrderCancelled  = "CANCELLED"
)

const (
	PaymentCard = "CARD"
	PaymentUPI  = "UPI"
	PaymentCOD  = "COD"
)

type OrderItem struct {
	ID       uint    `json:"id"`
	Product  Product `json:"product"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID          uint        `json:"id"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      string      `json:"status"`
	OrderDate   time.Time   `json:"orderDate"`
	Address     *Address    `json:"deliveryAddress,omitempty"`
}

type CheckoutRequest struct {
	AddressID     uint   `json:"addressId"`
	PaymentMethod string `json:"paymentMethod"`
}

type Review struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"productId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type TopProduct struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	UnitsSold int64   `json:"unitsSold"`
	Revenue   float64 `json:"revenue"`
}

type Analytics struct {
	TotalUsers   int64        `json:"totalUsers"`
	TotalOrders  int64        `json:"totalOrders"`
	TotalRevenue float64      `json:"totalRevenue"`
	TopProducts  []TopProduct `json:"topProducts"`
}

// ProductFilter narrows a product listing. Zero values are omitted from the
// query string and the key order is fixed, so equal filters always build
// byte-equal URLs.
type ProductFilter struct {
	CategoryID uint
	SortBy     string
	MinPrice   float64
	MaxPrice   float64
}

func (f ProductFilter) Query() string {
	var q []byte
	add := func(key, val string) {
		if len(q) > 0 {
			q = append(q, '&')
		}
		q = append(q, key...)
		q = append(q, '=')
		q = append(q, url.QueryEscape(val)...)
	}
	if f.CategoryID != 0 {
		add("categoryId", strconv.FormatUint(uint64(f.CategoryID), 10))
	}
	if f.SortBy != "" {
		add("sortBy", f.SortBy)
	}
	if f.MinPrice != 0 {
		add("minPrice", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != 0 {
		add("maxPrice", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	return string(q)
}
