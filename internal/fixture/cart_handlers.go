package fixture

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func (s *Server) GetCart(c echo.Context) error {
	cart, err := s.apiCart(userID(c))
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, cart)
}

func (s *Server) AddToCart(c echo.Context) error {
	uid := userID(c)
	var req struct {
		ProductID uint `json:"productId"`
		Quantity  int  `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	var product Product
	if err := s.DB.First(&product, req.ProductID).Error; err != nil {
		return errorJSON(c, http.StatusNotFound, "Product not found")
	}

	// Same product twice merges into one line.
	var item CartItem
	err := s.DB.Where("user_id = ? AND product_id = ?", uid, req.ProductID).First(&item).Error
	switch {
	case err == nil:
		item.Quantity += req.Quantity
		if err := s.DB.Save(&item).Error; err != nil {
			return errorJSON(c, http.StatusInternalServerError, "database error")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = CartItem{UserID: uid, ProductID: req.ProductID, Quantity: req.Quantity}
		if err := s.DB.Create(&item).Error; err != nil {
			return errorJSON(c, http.StatusInternalServerError, "database error")
		}
	default:
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}

	cart, err := s.apiCart(uid)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, cart)
}

func (s *Server) UpdateCartItem(c echo.Context) error {
	uid := userID(c)
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid item id")
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Quantity < 1 {
		return errorJSON(c, http.StatusBadRequest, "quantity must be positive")
	}

	var item CartItem
	if err := s.DB.Where("id = ? AND user_id = ?", itemID, uid).First(&item).Error; err != nil {
		return errorJSON(c, http.StatusNotFound, "Cart item not found")
	}
	item.Quantity = req.Quantity
	if err := s.DB.Save(&item).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}

	cart, err := s.apiCart(uid)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, cart)
}

func (s *Server) RemoveFromCart(c echo.Context) error {
	uid := userID(c)
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid item id")
	}
	if err := s.DB.Where("id = ? AND user_id = ?", itemID, uid).
		Delete(&CartItem{}).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}

	cart, err := s.apiCart(uid)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, cart)
}

func (s *Server) ClearCart(c echo.Context) error {
	if err := s.DB.Where("user_id = ?", userID(c)).Delete(&CartItem{}).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.NoContent(http.StatusOK)
}
