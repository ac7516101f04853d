package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-boarding/internal/middleware"
	"github.com/iliyamo/airline-boarding/internal/pass"
)

// GateHandler verifies boarding pass tokens presented at the gate.  It
// holds no ledger: everything it answers comes from the signed token.
type GateHandler struct {
	Passes middleware.PassVerifier
}

func NewGateHandler(v middleware.PassVerifier) *GateHandler {
	return &GateHandler{Passes: v}
}

// ----- DTOs -----

type verifyReq struct {
	Token string `json:"token" validate:"required"`
}

type passView struct {
	PassID         string    `json:"pass_id"`
	Passenger      string    `json:"passenger"`
	Seat           string    `json:"seat"`
	Class          string    `json:"class"`
	BaseFare       int       `json:"base_fare"`
	MealPrice      int       `json:"meal_price"`
	Wheelchair     bool      `json:"wheelchair"`
	ExtraLuggageKg float64   `json:"extra_luggage_kg"`
	LuggageCost    int       `json:"luggage_cost"`
	Total          int       `json:"total"`
	Currency       string    `json:"currency"`
	IssuedAt       time.Time `json:"issued_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

func toView(cl *pass.Claims) passView {
	v := passView{
		PassID:         cl.ID,
		Passenger:      cl.Passenger,
		Seat:           cl.Seat,
		Class:          cl.Class,
		BaseFare:       cl.BaseFare,
		MealPrice:      cl.MealPrice,
		Wheelchair:     cl.Wheelchair,
		ExtraLuggageKg: cl.ExtraLuggageKg,
		LuggageCost:    cl.LuggageCost,
		Total:          cl.Total,
		Currency:       cl.Currency,
	}
	if cl.IssuedAt != nil {
		v.IssuedAt = cl.IssuedAt.Time
	}
	if cl.ExpiresAt != nil {
		v.ExpiresAt = cl.ExpiresAt.Time
	}
	return v
}

// Verify: check a token posted in the body and echo its pass back.
func (h *GateHandler) Verify(c echo.Context) error {
	var req verifyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "token required"})
	}

	cl, err := h.Passes.Parse(req.Token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
	}
	return c.JSON(http.StatusOK, toView(cl))
}

// Current: the pass presented as a bearer token.  Requires PassAuth.
func (h *GateHandler) Current(c echo.Context) error {
	cl := middleware.CurrentPass(c)
	if cl == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, toView(cl))
}

// Lounge: admit the bearer to the business lounge.  Class is enforced by
// middleware.RequireClass on the route.
func (h *GateHandler) Lounge(c echo.Context) error {
	cl := middleware.CurrentPass(c)
	if cl == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"seat":      cl.Seat,
		"passenger": cl.Passenger,
		"lounge":    "granted",
	})
}
