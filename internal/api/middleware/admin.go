package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/ecomarket/catalog-api/internal/core/auth"
	"github.com/ecomarket/catalog-api/internal/core/domain"
)

// RequireAdmin gates a route group on the admin flag of the resolved
// claims. Must run after Auth. Services enforce their own admin checks as
// well; this is the HTTP-level gate for routes with no service check of
// their own.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !auth.IsAdmin(ClaimsFromContext(c)) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
