package api

import "fmt"

// Endpoint catalog for the storefront API. Paths are relative to the
// configured base URL. The id-taking builders never validate existence,
// that is the server's concern.
const (
	EndpointLogin      = "/auth/login"
	EndpointSignup     = "/auth/signup"
	EndpointAdminLogin = "/auth/admin/login"

	EndpointProducts      = "/products"
	EndpointProductSearch = "/products/search"

	EndpointCategories = "/categories"

	EndpointCart      = "/cart"
	EndpointCartAdd   = "/cart/add"
	EndpointCartClear = "/cart/clear"

	EndpointWishlist = "/wishlist"

	EndpointOrders   = "/orders"
	EndpointCheckout = "/orders/checkout"

	EndpointProfile   = "/users/profile"
	EndpointAddresses = "/users/addresses"

	EndpointReviews = "/reviews"

	EndpointAdminProducts  = "/admin/products"
	EndpointAdminOrders    = "/admin/orders"
	EndpointAdminAnalytics = "/admin/analytics"
)

func ProductPath(id uint) string            { return fmt.Sprintf("/products/%d", id) }
func ProductsByCategoryPath(id uint) string { return fmt.Sprintf("/products/category/%d", id) }

func CartUpdatePath(itemID uint) string { return fmt.Sprintf("/cart/update/%d", itemID) }
func CartRemovePath(itemID uint) string { return fmt.Sprintf("/cart/remove/%d", itemID) }

func WishlistAddPath(productID uint) string    { return fmt.Sprintf("/wishlist/add/%d", productID) }
func WishlistRemovePath(productID uint) string { return fmt.Sprintf("/wishlist/remove/%d", productID) }
func WishlistMoveToCartPath(productID uint) string {
	return fmt.Sprintf("/wishlist/move-to-cart/%d", productID)
}

func OrderPath(id uint) string   { return fmt.Sprintf("/orders/%d", id) }
func AddressPath(id uint) string { return fmt.Sprintf("/users/addresses/%d", id) }

func ProductReviewsPath(productID uint) string { return fmt.Sprintf("/reviews/product/%d", productID) }
func ReviewPath(id uint) string                { return fmt.Sprintf("/reviews/%d", id) }

func AdminProductPath(id uint) string { return fmt.Sprintf("/admin/products/%d", id) }
func AdminOrderStatusPath(id uint) string {
	return fmt.Sprintf("/admin/orders/%d/status", id)
}
