package api_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marketbee/shopfront/internal/fixture"
	"github.com/marketbee/shopfront/pkg/api"
	"github.com/marketbee/shopfront/pkg/store"
)

// Round trips against the in-process fixture API, the closest thing to the
// real contract this repo can run hermetically.

type env struct {
	T      *testing.T
	Client *api.Client
	Store  *store.MemStore
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := fixture.OpenDB("")
	require.NoError(t, err)
	require.NoError(t, fixture.Seed(db))

	srv := fixture.NewServer(db, []byte("test-secret"), nil)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	st := store.NewMemStore()
	return &env{T: t, Client: api.New(ts.URL+"/api", st), Store: st}
}

func (e *env) login(email, password string) *api.LoginResponse {
	e.T.Helper()
	resp, err := e.Client.Login(context.Background(), email, password)
	require.NoError(e.T, err)
	e.Store.Set(store.KeyAuthToken, resp.Token)
	e.Store.Set(store.KeyUserData, resp)
	return resp
}

func (e *env) loginCustomer() *api.LoginResponse {
	return e.login("amit@shopfront.test", "customer123")
}

func (e *env) loginAdmin() *api.LoginResponse {
	e.T.Helper()
	resp, err := e.Client.AdminLogin(context.Background(), "admin@shopfront.test", "admin123")
	require.NoError(e.T, err)
	e.Store.Set(store.KeyAuthToken, resp.Token)
	e.Store.Set(store.KeyUserData, resp)
	return resp
}

func (e *env) addAddress() *api.Address {
	e.T.Helper()
	addr, err := e.Client.AddAddress(context.Background(), api.Address{
		FullName:     "Amit Kumar",
		Phone:        "9876543210",
		AddressLine1: "14 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		ZipCode:      "560001",
		Country:      "India",
	})
	require.NoError(e.T, err)
	return addr
}

func TestLoginIssuesTokenAndUser(t *testing.T) {
	e := newEnv(t)
	resp := e.loginCustomer()

	require.NotEmpty(t, resp.Token)
	require.Equal(t, "Amit Kumar", resp.FullName)
	require.Equal(t, api.RoleCustomer, resp.Role)
}

func TestLoginBadPassword(t *testing.T) {
	e := newEnv(t)
	_, err := e.Client.Login(context.Background(), "amit@shopfront.test", "wrong")
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, "Invalid email or password", reqErr.Message)
}

func TestSignupThenLogin(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	req := api.SignupRequest{
		FullName: "Priya Sharma",
		Email:    "priya@shopfront.test",
		Password: "hunter2hunter2",
	}
	require.NoError(t, e.Client.Signup(ctx, req))

	// Duplicate email is rejected.
	err := e.Client.Signup(ctx, req)
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, "Email already exists", reqErr.Message)

	resp := e.login("priya@shopfront.test", "hunter2hunter2")
	require.Equal(t, api.RoleCustomer, resp.Role)
}

func TestProductCatalog(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	all, err := e.Client.Products(ctx, api.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 5)

	categories, err := e.Client.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)

	electronics, err := e.Client.ProductsByCategory(ctx, categories[0].ID)
	require.NoError(t, err)
	require.Len(t, electronics, 3)
	for _, p := range electronics {
		require.Equal(t, "Electronics", p.CategoryName)
	}

	cheap, err := e.Client.Products(ctx, api.ProductFilter{MaxPrice: 1000, SortBy: "price_asc"})
	require.NoError(t, err)
	require.Len(t, cheap, 1)
	require.Equal(t, "The Pragmatic Programmer", cheap[0].Name)

	found, err := e.Client.SearchProducts(ctx, "Keyboard")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "Mechanical Keyboard", found[0].Name)
}

func TestCartMergesSameProduct(t *testing.T) {
	e := newEnv(t)
	e.loginCustomer()
	ctx := context.Background()

	cart, err := e.Client.AddToCart(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 2, cart.Items[0].Quantity)

	cart, err = e.Client.AddToCart(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 3, cart.Items[0].Quantity)
	require.InDelta(t, 3*cart.Items[0].Price, cart.TotalPrice, 0.001)

	cart, err = e.Client.UpdateCartItem(ctx, cart.Items[0].ID, 1)
	require.NoError(t, err)
	require.Equal(t, 1, cart.Items[0].Quantity)

	cart, err = e.Client.RemoveFromCart(ctx, cart.Items[0].ID)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
	require.Zero(t, cart.TotalPrice)
}

func TestCheckoutFlow(t *testing.T) {
	e := newEnv(t)
	e.loginCustomer()
	ctx := context.Background()
	addr := e.addAddress()

	_, err := e.Client.AddToCart(ctx, 1, 2)
	require.NoError(t, err)
	_, err = e.Client.AddToCart(ctx, 4, 1)
	require.NoError(t, err)

	order, err := e.Client.Checkout(ctx, addr.ID, api.PaymentUPI)
	require.NoError(t, err)
	require.Equal(t, api.OrderProcessing, order.Status)
	require.Len(t, order.Items, 2)
	require.InDelta(t, 2*2999+650, order.TotalAmount, 0.001)
	require.NotNil(t, order.Address)
	require.Equal(t, "Bengaluru", order.Address.City)

	// Checkout drains the cart.
	cart, err := e.Client.Cart(ctx)
	require.NoError(t, err)
	require.Empty(t, cart.Items)

	orders, err := e.Client.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	got, err := e.Client.Order(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, order.ID, got.ID)
}

func TestCheckoutEmptyCart(t *testing.T) {
	e := newEnv(t)
	e.loginCustomer()
	addr := e.addAddress()

	_, err := e.Client.Checkout(context.Background(), addr.ID, api.PaymentCOD)
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, "Cart is empty", reqErr.Message)
}

func TestWishlistMoveToCart(t *testing.T) {
	e := newEnv(t)
	e.loginCustomer()
	ctx := context.Background()

	_, err := e.Client.AddToWishlist(ctx, 2)
	require.NoError(t, err)
	entries, err := e.Client.Wishlist(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, uint(2), entries[0].Product.ID)

	require.NoError(t, e.Client.MoveToCart(ctx, 2))

	entries, err = e.Client.Wishlist(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)

	cart, err := e.Client.Cart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, uint(2), cart.Items[0].Product.ID)
}

func TestReviewsFeedProductRating(t *testing.T) {
	e := newEnv(t)
	e.loginCustomer()
	ctx := context.Background()

	r, err := e.Client.AddReview(ctx, 1, 4, "Solid sound for the price")
	require.NoError(t, err)
	require.Equal(t, "Amit Kumar", r.UserName)

	p, err := e.Client.Product(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, p.ReviewCount)
	require.InDelta(t, 4.0, p.AverageRating, 0.001)

	updated, err := e.Client.UpdateReview(ctx, r.ID, 5, "Even better after a week")
	require.NoError(t, err)
	require.Equal(t, 5, updated.Rating)

	require.NoError(t, e.Client.DeleteReview(ctx, r.ID))
	p, err = e.Client.Product(ctx, 1)
	require.NoError(t, err)
	require.Zero(t, p.ReviewCount)
}

func TestTamperedTokenClearsSession(t *testing.T) {
	e := newEnv(t)
	e.loginCustomer()
	e.Store.Set(store.KeyAuthToken, "tampered.token.value")

	_, err := e.Client.Cart(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthenticated)
	require.Equal(t, "", store.Token(e.Store))
}

func TestAnonymousCartIsUnauthenticated(t *testing.T) {
	e := newEnv(t)
	_, err := e.Client.Cart(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthenticated)
}

func TestAdminLoginRejectsCustomer(t *testing.T) {
	e := newEnv(t)
	_, err := e.Client.AdminLogin(context.Background(), "amit@shopfront.test", "customer123")
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, 403, reqErr.Status)
}

func TestAdminEndpointsNeedAdminRole(t *testing.T) {
	e := newEnv(t)
	e.loginCustomer()

	_, err := e.Client.AdminProducts(context.Background())
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, 403, reqErr.Status)
}

func TestAdminProductLifecycle(t *testing.T) {
	e := newEnv(t)
	e.loginAdmin()
	ctx := context.Background()

	created, err := e.Client.AdminCreateProduct(ctx, api.Product{
		Name: "Desk Lamp", Description: "Warm LED", Price: 899, Stock: 20, CategoryID: 3,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	created.Price = 799
	updated, err := e.Client.AdminUpdateProduct(ctx, created.ID, *created)
	require.NoError(t, err)
	require.InDelta(t, 799, updated.Price, 0.001)

	require.NoError(t, e.Client.AdminDeleteProduct(ctx, created.ID))
	_, err = e.Client.Product(ctx, created.ID)
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, 404, reqErr.Status)
}

func TestAdminOrdersAndAnalytics(t *testing.T) {
	e := newEnv(t)
	e.loginCustomer()
	ctx := context.Background()
	addr := e.addAddress()
	_, err := e.Client.AddToCart(ctx, 5, 2)
	require.NoError(t, err)
	placed, err := e.Client.Checkout(ctx, addr.ID, api.PaymentCard)
	require.NoError(t, err)

	e.loginAdmin()

	orders, err := e.Client.AdminOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	shipped, err := e.Client.AdminUpdateOrderStatus(ctx, placed.ID, api.OrderShipped)
	require.NoError(t, err)
	require.Equal(t, api.OrderShipped, shipped.Status)

	_, err = e.Client.AdminUpdateOrderStatus(ctx, placed.ID, "LOST_IN_TRANSIT")
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)

	an, err := e.Client.AdminAnalytics(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), an.TotalUsers)
	require.Equal(t, int64(1), an.TotalOrders)
	require.InDelta(t, 2*1250, an.TotalRevenue, 0.001)
	require.Len(t, an.TopProducts, 1)
	require.Equal(t, "Cast Iron Skillet", an.TopProducts[0].Name)
	require.Equal(t, int64(2), an.TopProducts[0].UnitsSold)
}
