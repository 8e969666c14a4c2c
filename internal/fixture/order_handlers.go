package fixture

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marketbee/shopfront/pkg/api"
)

func (s *Server) ListOrders(c echo.Context) error {
	var orders []Order
	if err := s.DB.Where("user_id = ?", userID(c)).
		Order("created_at DESC").Find(&orders).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	out := make([]api.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, s.apiOrder(o))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) GetOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid order id")
	}
	var order Order
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID(c)).
		First(&order).Error; err != nil {
		return errorJSON(c, http.StatusNotFound, "Order not found")
	}
	return c.JSON(http.StatusOK, s.apiOrder(order))
}

func (s *Server) Checkout(c echo.Context) error {
	uid := userID(c)
	var req api.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	switch req.PaymentMethod {
	case api.PaymentCard, api.PaymentUPI, api.PaymentCOD:
	default:
		return errorJSON(c, http.StatusBadRequest, "invalid payment method")
	}

	var addr Address
	if err := s.DB.Where("id = ? AND user_id = ?", req.AddressID, uid).
		First(&addr).Error; err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid delivery address")
	}

	var items []CartItem
	if err := s.DB.Where("user_id = ?", uid).Find(&items).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	if len(items) == 0 {
		return errorJSON(c, http.StatusBadRequest, "Cart is empty")
	}

	order := Order{
		UserID:        uid,
		AddressID:     addr.ID,
		Status:        api.OrderProcessing,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.DB.Create(&order).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	for _, it := range items {
		var p Product
		if err := s.DB.First(&p, it.ProductID).Error; err != nil {
			continue
		}
		line := OrderItem{
			OrderID:   order.ID,
			ProductID: p.ID,
			Price:     p.Price,
			Quantity:  it.Quantity,
		}
		if err := s.DB.Create(&line).Error; err != nil {
			return errorJSON(c, http.StatusInternalServerError, "database error")
		}
		order.TotalAmount += line.Price * float64(line.Quantity)
	}
	if err := s.DB.Save(&order).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	if err := s.DB.Where("user_id = ?", uid).Delete(&CartItem{}).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}

	s.Log.Info("order placed", "user_id", uid, "order_id", order.ID, "total", order.TotalAmount)
	return c.JSON(http.StatusOK, s.apiOrder(order))
}
