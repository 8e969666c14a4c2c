package fixture

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListProducts(c echo.Context) error {
	q := s.DB.Model(&Product{})

	if v := c.QueryParam("categoryId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid categoryId")
		}
		q = q.Where("category_id = ?", id)
	}
	if v := c.QueryParam("minPrice"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid minPrice")
		}
		q = q.Where("price >= ?", min)
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid maxPrice")
		}
		q = q.Where("price <= ?", max)
	}

	switch c.QueryParam("sortBy") {
	case "price_asc":
		q = q.Order("price ASC")
	case "price_desc":
		q = q.Order("price DESC")
	case "name":
		q = q.Order("name ASC")
	default:
		q = q.Order("id ASC")
	}

	var products []Product
	if err := q.Find(&products).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, s.apiProducts(products))
}

func (s *Server) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid product id")
	}
	var p Product
	if err := s.DB.First(&p, id).Error; err != nil {
		return errorJSON(c, http.StatusNotFound, "Product not found")
	}
	return c.JSON(http.StatusOK, s.apiProduct(p))
}

func (s *Server) SearchProducts(c echo.Context) error {
	query := c.QueryParam("q")
	var products []Product
	pattern := "%" + query + "%"
	if err := s.DB.Where("name LIKE ? OR description LIKE ?", pattern, pattern).
		Order("id").Find(&products).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, s.apiProducts(products))
}

func (s *Server) ProductsByCategory(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid category id")
	}
	var products []Product
	if err := s.DB.Where("category_id = ?", id).Order("id").Find(&products).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, s.apiProducts(products))
}

func (s *Server) ListCategories(c echo.Context) error {
	var categories []Category
	if err := s.DB.Order("id").Find(&categories).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, categories)
}
