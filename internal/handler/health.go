package handler // HTTP handlers for the gate service

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// Health is used by load balancers and the boarding desk to check that
// the gate service is up.  It always answers 200 "ok".
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok")
}
