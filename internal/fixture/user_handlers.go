package fixture

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/marketbee/shopfront/pkg/api"
)

func (s *Server) GetProfile(c echo.Context) error {
	var user User
	if err := s.DB.First(&user, userID(c)).Error; err != nil {
		return errorJSON(c, http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) UpdateProfile(c echo.Context) error {
	var user User
	if err := s.DB.First(&user, userID(c)).Error; err != nil {
		return errorJSON(c, http.StatusNotFound, "User not found")
	}
	var req api.User
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	// Email and role are not editable through the profile.
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if err := s.DB.Save(&user).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) ListAddresses(c echo.Context) error {
	var addresses []Address
	if err := s.DB.Where("user_id = ?", userID(c)).Order("id").Find(&addresses).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, addresses)
}

func (s *Server) AddAddress(c echo.Context) error {
	var addr Address
	if err := c.Bind(&addr); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	addr.ID = 0
	addr.UserID = userID(c)
	if err := s.DB.Create(&addr).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, addr)
}

func (s *Server) UpdateAddress(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid address id")
	}
	var existing Address
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID(c)).
		First(&existing).Error; err != nil {
		return errorJSON(c, http.StatusNotFound, "Address not found")
	}
	var req Address
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	req.ID = existing.ID
	req.UserID = existing.UserID
	if err := s.DB.Save(&req).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, req)
}

func (s *Server) DeleteAddress(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid address id")
	}
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID(c)).
		Delete(&Address{}).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}
	return c.NoContent(http.StatusOK)
}
