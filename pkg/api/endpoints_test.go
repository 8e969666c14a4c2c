package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathBuilders(t *testing.T) {
	require.Equal(t, "/products/42", ProductPath(42))
	require.Equal(t, "/products/category/3", ProductsByCategoryPath(3))
	require.Equal(t, "/cart/update/9", CartUpdatePath(9))
	require.Equal(t, "/cart/remove/9", CartRemovePath(9))
	require.Equal(t, "/wishlist/add/5", WishlistAddPath(5))
	require.Equal(t, "/wishlist/remove/5", WishlistRemovePath(5))
	require.Equal(t, "/wishlist/move-to-cart/5", WishlistMoveToCartPath(5))
	require.Equal(t, "/orders/11", OrderPath(11))
	require.Equal(t, "/users/addresses/2", AddressPath(2))
	require.Equal(t, "/reviews/product/42", ProductReviewsPath(42))
	require.Equal(t, "/reviews/8", ReviewPath(8))
	require.Equal(t, "/admin/products/4", AdminProductPath(4))
	require.Equal(t, "/admin/orders/11/status", AdminOrderStatusPath(11))
}

func TestProductFilterQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter ProductFilter
		want   string
	}{
		{"empty", ProductFilter{}, ""},
		{"category and min", ProductFilter{CategoryID: 3, MinPrice: 10}, "categoryId=3&minPrice=10"},
		{"all fields", ProductFilter{CategoryID: 1, SortBy: "price_asc", MinPrice: 5.5, MaxPrice: 100},
			"categoryId=1&sortBy=price_asc&minPrice=5.5&maxPrice=100"},
		{"max only", ProductFilter{MaxPrice: 250}, "maxPrice=250"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.filter.Query())
		})
	}
}

func TestProductFilterQueryIsStable(t *testing.T) {
	f := ProductFilter{CategoryID: 2, SortBy: "name", MinPrice: 1, MaxPrice: 9}
	first := f.Query()
	for i := 0; i < 20; i++ {
		require.Equal(t, first, f.Query())
	}
}
