package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/marketplace/internal/tokens"
)

const (
	ctxUserID = "userID"
	ctxEmail  = "email"
	ctxRole   = "role"
)

func setUserContext(c echo.Context, claims *tokens.Claims) {
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxEmail, claims.Email)
	c.Set(ctxRole, claims.Role)
}

func UserID(c echo.Context) uint {
	if v, ok := c.Get(ctxUserID).(uint); ok {
		return v
	}
	return 0
}

func Email(c echo.Context) string {
	if v, ok := c.Get(ctxEmail).(string); ok {
		return v
	}
	return ""
}

func Role(c echo.Context) string {
	if v, ok := c.Get(ctxRole).(string); ok {
		return v
	}
	return ""
}
