package middleware

// identity.go holds helpers shared across middleware files for reading
// the verified boarding pass back out of the Echo context.

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/airline-boarding/internal/pass"
)

// PassKey is the context key PassAuth stores verified claims under.
const PassKey = "pass"

// CurrentPass returns the claims stored by PassAuth, or nil when the
// request was not authenticated.
func CurrentPass(c echo.Context) *pass.Claims {
    cl, _ := c.Get(PassKey).(*pass.Claims)
    return cl
}

// passSeat identifies the pass holder by seat code.  It returns "anon"
// when no pass is present.
func passSeat(c echo.Context) string {
    if cl := CurrentPass(c); cl != nil && cl.Seat != "" {
        return cl.Seat
    }
    return "anon"
}
