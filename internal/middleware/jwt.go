package middleware

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/airline-boarding/internal/pass"
)

// PassVerifier checks a raw boarding pass token and returns its claims.
type PassVerifier interface {
    Parse(raw string) (*pass.Claims, error)
}

// PassAuth returns an Echo middleware that requires a boarding pass token
// in the Authorization header ("Bearer <token>").  Verified claims are
// stored in the context under PassKey for handlers to read via
// CurrentPass.
func PassAuth(v PassVerifier) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

            claims, err := v.Parse(raw)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }
            c.Set(PassKey, claims)
            return next(c)
        }
    }
}
