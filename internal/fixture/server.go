package fixture

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	ecM "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	DB        *gorm.DB
	JWTSecret []byte
	Log       *slog.Logger
	TokenTTL  time.Duration
}

func NewServer(db *gorm.DB, jwtSecret []byte, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		DB:        db,
		JWTSecret: jwtSecret,
		Log:       log,
		TokenTTL:  24 * time.Hour,
	}
}

// Routes wires the whole consumed surface under /api.
func (s *Server) Routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(ecM.Recover(), ecM.RequestID())

	g := e.Group("/api")

	g.POST("/auth/signup", s.Signup)
	g.POST("/auth/login", s.Login)
	g.POST("/auth/admin/login", s.AdminLogin)

	g.GET("/products", s.ListProducts)
	g.GET("/products/search", s.SearchProducts)
	g.GET("/products/category/:id", s.ProductsByCategory)
	g.GET("/products/:id", s.GetProduct)
	g.GET("/categories", s.ListCategories)
	g.GET("/reviews/product/:id", s.ProductReviews)

	a := g.Group("", s.Authenticate)
	a.GET("/cart", s.GetCart)
	a.POST("/cart/add", s.AddToCart)
	a.PUT("/cart/update/:id", s.UpdateCartItem)
	a.DELETE("/cart/remove/:id", s.RemoveFromCart)
	a.DELETE("/cart/clear", s.ClearCart)

	a.GET("/wishlist", s.GetWishlist)
	a.POST("/wishlist/add/:id", s.AddToWishlist)
	a.DELETE("/wishlist/remove/:id", s.RemoveFromWishlist)
	a.POST("/wishlist/move-to-cart/:id", s.MoveToCart)

	a.GET("/orders", s.ListOrders)
	a.GET("/orders/:id", s.GetOrder)
	a.POST("/orders/checkout", s.Checkout)

	a.GET("/users/profile", s.GetProfile)
	a.PUT("/users/profile", s.UpdateProfile)
	a.GET("/users/addresses", s.ListAddresses)
	a.POST("/users/addresses", s.AddAddress)
	a.PUT("/users/addresses/:id", s.UpdateAddress)
	a.DELETE("/users/addresses/:id", s.DeleteAddress)

	a.POST("/reviews", s.AddReview)
	a.PUT("/reviews/:id", s.UpdateReview)
	a.DELETE("/reviews/:id", s.DeleteReview)

	adm := g.Group("/admin", s.Authenticate, s.RequireAdmin)
	adm.GET("/products", s.AdminListProducts)
	adm.POST("/products", s.AdminCreateProduct)
	adm.PUT("/products/:id", s.AdminUpdateProduct)
	adm.DELETE("/products/:id", s.AdminDeleteProduct)
	adm.GET("/orders", s.AdminListOrders)
	adm.PUT("/orders/:id/status", s.AdminUpdateOrderStatus)
	adm.GET("/analytics", s.AdminAnalytics)

	return e
}
