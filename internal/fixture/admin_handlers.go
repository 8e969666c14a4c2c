package fixture

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/marketbee/shopfront/pkg/api"
)

func (s *Server) AdminListProducts(c echo.Context) error {
	var products []Product
	if err := s.DB.Order("id").Find(&products).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, s.apiProducts(products))
}

func (s *Server) AdminCreateProduct(c echo.Context) error {
	var req api.Product
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Price <= 0 {
		return errorJSON(c, http.StatusBadRequest, "name and a positive price are required")
	}
	p := Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	}
	if err := s.DB.Create(&p).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, s.apiProduct(p))
}

func (s *Server) AdminUpdateProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid product id")
	}
	var p Product
	if err := s.DB.First(&p, id).Error; err != nil {
		return errorJSON(c, http.StatusNotFound, "Product not found")
	}
	var req api.Product
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.Stock = req.Stock
	p.ImageURL = req.ImageURL
	p.CategoryID = req.CategoryID
	if err := s.DB.Save(&p).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, s.apiProduct(p))
}

func (s *Server) AdminDeleteProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid product id")
	}
	if err := s.DB.Delete(&Product{}, id).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.NoContent(http.StatusOK)
}

func (s *Server) AdminListOrders(c echo.Context) error {
	var orders []Order
	if err := s.DB.Order("created_at DESC").Find(&orders).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	out := make([]api.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, s.apiOrder(o))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) AdminUpdateOrderStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid order id")
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	switch req.Status {
	case api.OrderProcessing, api.OrderShipped, api.OrderDelivered, api.OrderCancelled:
	default:
		return errorJSON(c, http.StatusBadRequest, "invalid order status")
	}

	var order Order
	if err := s.DB.First(&order, id).Error; err != nil {
		return errorJSON(c, http.StatusNotFound, "Order not found")
	}
	order.Status = req.Status
	if err := s.DB.Save(&order).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	s.Log.Info("order status updated", "order_id", order.ID, "status", order.Status)
	return c.JSON(http.StatusOK, s.apiOrder(order))
}

func (s *Server) AdminAnalytics(c echo.Context) error {
	var out api.Analytics
	s.DB.Model(&User{}).Count(&out.TotalUsers)
	s.DB.Model(&Order{}).Count(&out.TotalOrders)
	s.DB.Model(&Order{}).Select("COALESCE(SUM(total_amount),0)").Scan(&out.TotalRevenue)

	rows := []struct {
		ProductID uint
		Name      string
		UnitsSold int64
		Revenue   float64
	}{}
	s.DB.Model(&OrderItem{}).
		Select("order_items.product_id AS product_id, products.name AS name, "+
			"SUM(order_items.quantity) AS units_sold, "+
			"SUM(order_items.price * order_items.quantity) AS revenue").
		Joins("JOIN products ON products.id = order_items.product_id").
		Group("order_items.product_id, products.name").
		Order("units_sold DESC").
		Limit(5).
		Scan(&rows)
	for _, r := range rows {
		out.TopProducts = append(out.TopProducts, api.TopProduct{
			ProductID: r.ProductID,
			Name:      r.Name,
			UnitsSold: r.UnitsSold,
			Revenue:   r.Revenue,
		})
	}
	return c.JSON(http.StatusOK, out)
}
