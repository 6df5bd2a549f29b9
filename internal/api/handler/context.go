package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecomarket/catalog-api/internal/api/middleware"
	"github.com/ecomarket/catalog-api/internal/core/auth"
)

// ctxClaims extracts the session claims injected by the Auth middleware.
// Their presence proves the middleware ran; a handler reached without them
// is a routing mistake and fails closed with 401.
func ctxClaims(c echo.Context) (*auth.SessionClaims, error) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
