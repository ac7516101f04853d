package router // package router defines how HTTP routes are registered for the gate API

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-boarding/internal/handler"
	"github.com/iliyamo/airline-boarding/internal/ledger"
	"github.com/iliyamo/airline-boarding/internal/middleware"
)

// requestValidator plugs validator/v10 into echo's c.Validate.
type requestValidator struct {
	v *validator.Validate
}

func (rv *requestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}

// RegisterRoutes installs the request validator and registers the health
// check on the provided Echo instance.
func RegisterRoutes(e *echo.Echo) {
	e.Validator = &requestValidator{v: validator.New()}
	e.GET("/healthz", handler.Health)
}

// RegisterGate registers the pass endpoints under /v1/passes.  rl is the
// rate limiter; on bearer routes it runs after PassAuth so that seat-based
// key strategies see the verified pass.
func RegisterGate(e *echo.Echo, h *handler.GateHandler, rl echo.MiddlewareFunc) {
	g := e.Group("/v1/passes")
	g.POST("/verify", h.Verify, rl)

	auth := middleware.PassAuth(h.Passes)
	g.GET("/current", h.Current, auth, rl)
	g.GET("/lounge", h.Lounge, auth, rl, middleware.RequireClass(ledger.ClassBusiness))
}
