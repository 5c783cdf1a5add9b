package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-system/internal/api/middleware"
	"github.com/freelancehub/marketplace-system/internal/core/auth"
)

// ctxClaims extracts the identity attached by the request gate and performs
// a fast-fail check before any service call: the claims' presence proves the
// gate ran on this route. Handlers on protected routes must go through this
// instead of assuming the context keys exist.
func ctxClaims(c echo.Context) (*auth.Claims, error) {
	claims, _ := c.Get(middleware.ContextKeyClaims).(*auth.Claims)
	if claims == nil || claims.Subject == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
