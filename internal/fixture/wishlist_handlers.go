package fixture

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/marketbee/shopfront/pkg/api"
)

func (s *Server) GetWishlist(c echo.Context) error {
	var items []WishlistItem
	if err := s.DB.Where("user_id = ?", userID(c)).Order("id").Find(&items).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	out := make([]api.WishlistEntry, 0, len(items))
	for _, it := range items {
		var p Product
		if err := s.DB.First(&p, it.ProductID).Error; err != nil {
			continue
		}
		out = append(out, api.WishlistEntry{ID: it.ID, Product: s.apiProduct(p)})
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) AddToWishlist(c echo.Context) error {
	uid := userID(c)
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid product id")
	}
	var p Product
	if err := s.DB.First(&p, productID).Error; err != nil {
		return errorJSON(c, http.StatusNotFound, "Product not found")
	}

	var item WishlistItem
	err = s.DB.Where("user_id = ? AND product_id = ?", uid, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = WishlistItem{UserID: uid, ProductID: uint(productID)}
		if err := s.DB.Create(&item).Error; err != nil {
			return errorJSON(c, http.StatusInternalServerError, "database error")
		}
	} else if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, api.WishlistEntry{ID: item.ID, Product: s.apiProduct(p)})
}

func (s *Server) RemoveFromWishlist(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid product id")
	}
	if err := s.DB.Where("user_id = ? AND product_id = ?", userID(c), productID).
		Delete(&WishlistItem{}).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.NoContent(http.StatusOK)
}

// MoveToCart deletes the wishlist row and merges the product into the cart.
func (s *Server) MoveToCart(c echo.Context) error {
	uid := userID(c)
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid product id")
	}

	var entry WishlistItem
	if err := s.DB.Where("user_id = ? AND product_id = ?", uid, productID).
		First(&entry).Error; err != nil {
		return errorJSON(c, http.StatusNotFound, "Product not in wishlist")
	}

	var item CartItem
	err = s.DB.Where("user_id = ? AND product_id = ?", uid, productID).First(&item).Error
	switch {
	case err == nil:
		item.Quantity++
		if err := s.DB.Save(&item).Error; err != nil {
			return errorJSON(c, http.StatusInternalServerError, "database error")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = CartItem{UserID: uid, ProductID: uint(productID), Quantity: 1}
		if err := s.DB.Create(&item).Error; err != nil {
			return errorJSON(c, http.StatusInternalServerError, "database error")
		}
	default:
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}

	if err := s.DB.Delete(&entry).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.NoContent(http.StatusOK)
}
