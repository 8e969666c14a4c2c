package fixture

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marketbee/shopfront/pkg/api"
)

func (s *Server) ProductReviews(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid product id")
	}
	var reviews []Review
	if err := s.DB.Where("product_id = ?", productID).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	out := make([]api.Review, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, s.apiReview(r))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) AddReview(c echo.Context) error {
	var req struct {
		ProductID uint   `json:"productId"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return errorJSON(c, http.StatusBadRequest, "rating must be between 1 and 5")
	}
	var p Product
	if err := s.DB.First(&p, req.ProductID).Error; err != nil {
		return errorJSON(c, http.StatusNotFound, "Product not found")
	}

	review := Review{
		UserID:    userID(c),
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.DB.Create(&review).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, s.apiReview(review))
}

func (s *Server) UpdateReview(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid review id")
	}
	var review Review
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID(c)).
		First(&review).Error; err != nil {
		return errorJSON(c, http.StatusNotFound, "Review not found")
	}
	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return errorJSON(c, http.StatusBadRequest, "rating must be between 1 and 5")
	}
	review.Rating = req.Rating
	review.Comment = req.Comment
	if err := s.DB.Save(&review).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, s.apiReview(review))
}

func (s *Server) DeleteReview(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid review id")
	}
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID(c)).
		Delete(&Review{}).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.NoContent(http.StatusOK)
}
