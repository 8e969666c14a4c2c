package fixture

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

func errorJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"error": msg})
}

// Authenticate verifies the bearer token and stashes the caller's id and
// role on the request context.
func (s *Server) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			return errorJSON(c, http.StatusUnauthorized, "missing access token")
		}
		claims, err := ClaimsFromToken(tokenStr, s.JWTSecret)
		if err != nil {
			return errorJSON(c, http.StatusUnauthorized, "invalid or expired token")
		}
		id, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil {
			return errorJSON(c, http.StatusUnauthorized, "token has no subject")
		}
		c.Set(ctxUserID, uint(id))
		c.Set(ctxRole, claims.Role)
		return next(c)
	}
}

func (s *Server) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if role, _ := c.Get(ctxRole).(string); role != "ADMIN" {
			return errorJSON(c, http.StatusForbidden, "admin access required")
		}
		return next(c)
	}
}

func userID(c echo.Context) uint {
	id, _ := c.Get(ctxUserID).(uint)
	return id
}
