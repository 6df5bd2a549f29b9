package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ecomarket/catalog-api/internal/core/auth"
)

// claimsKey is the echo context key the resolved session claims live under.
const claimsKey = "session_claims"

// Auth resolves the bearer token and injects the session claims into the
// request context. Resolution failures propagate as domain errors; the
// central error handler maps them to 401/403/400.
func Auth(codec *auth.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Resolve(parts[1], time.Now().UTC())
			if err != nil {
				return err
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFromContext returns the session claims injected by Auth, or nil
// when the middleware did not run.
func ClaimsFromContext(c echo.Context) *auth.SessionClaims {
	claims, _ := c.Get(claimsKey).(*auth.SessionClaims)
	return claims
}
