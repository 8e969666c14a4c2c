package fixture

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/marketbee/shopfront/internal/hash"
	"github.com/marketbee/shopfront/pkg/api"
)

func (s *Server) Signup(c echo.Context) error {
	var req api.SignupRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return errorJSON(c, http.StatusBadRequest, "fullName, email and password are required")
	}

	var existing User
	if err := s.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return errorJSON(c, http.StatusBadRequest, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "cannot hash password")
	}
	user := User{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: pwHash,
		Role:         api.RoleCustomer,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return errorJSON(c, http.StatusInternalServerError, "database error")
	}

	s.Log.Info("user registered", "user_id", user.ID, "email", user.Email)
	return c.JSON(http.StatusOK, map[string]string{"message": "User registered successfully"})
}

func (s *Server) Login(c echo.Context) error {
	return s.login(c, "")
}

// AdminLogin is the admin portal's entry. It issues tokens only to admin
// accounts; customers get a 403 even with a valid password.
func (s *Server) AdminLogin(c echo.Context) error {
	return s.login(c, api.RoleAdmin)
}

func (s *Server) login(c echo.Context, requiredRole string) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}

	var user User
	if err := s.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid email or password")
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return errorJSON(c, http.StatusBadRequest, "Invalid email or password")
	}
	if requiredRole != "" && user.Role != requiredRole {
		return errorJSON(c, http.StatusForbidden, "admin access required")
	}

	token, err := IssueToken(&user, s.JWTSecret, s.TokenTTL)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "cannot issue token")
	}

	s.Log.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return c.JSON(http.StatusOK, api.LoginResponse{
		Token: token,
		User: api.User{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
			Phone:    user.Phone,
			Role:     user.Role,
		},
	})
}
