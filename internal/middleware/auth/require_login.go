package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/marketplace/internal/tokens"
)

type Middleware struct {
	JWTSecret []byte
}

// RequireLogin authenticates the request from the Authorization header and
// puts the claim set into the echo context. Missing, malformed, expired and
// badly signed tokens all get the same 401.
func (m *Middleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
		}

		claims, err := tokens.Parse(raw, m.JWTSecret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
		}

		setUserContext(c, claims)
		return next(c)
	}
}
