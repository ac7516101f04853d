package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// RequireClass returns a middleware that lets through only passes issued
// for one of the given cabin classes.  It must run after PassAuth; a
// request without a pass or with another class gets 403 Forbidden.
func RequireClass(classes ...string) echo.MiddlewareFunc {
    allowed := make(map[string]bool, len(classes))
    for _, cl := range classes {
        allowed[cl] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            cl := CurrentPass(c)
            if cl == nil || !allowed[cl.Class] {
                return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
            }
            return next(c)
        }
    }
}
