package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-boarding/internal/config"
	"github.com/iliyamo/airline-boarding/internal/logger"
	"github.com/iliyamo/airline-boarding/internal/pass"
)

// stubVerifier accepts exactly one token.
type stubVerifier struct {
	token  string
	claims *pass.Claims
}

func (s stubVerifier) Parse(raw string) (*pass.Claims, error) {
	if raw != s.token {
		return nil, pass.ErrInvalidToken
	}
	return s.claims, nil
}

func newContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/passes/current", nil)
	req.RemoteAddr = "10.0.0.7:5000"
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/passes/current")
	return c, rec
}

func ok(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

func TestPassAuth(t *testing.T) {
	v := stubVerifier{token: "good", claims: &pass.Claims{Seat: "3B", Class: "Business"}}
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer bad", http.StatusUnauthorized},
		{"good token", "Bearer good", http.StatusNoContent},
	}
	for _, tt := range tests {
		c, rec := newContext(tt.header)
		if err := PassAuth(v)(ok)(c); err != nil {
			t.Fatalf("%s: unexpected error %v", tt.name, err)
		}
		if rec.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.name, rec.Code, tt.want)
		}
	}
}

func TestPassAuthStoresClaims(t *testing.T) {
	want := &pass.Claims{Seat: "3B"}
	c, _ := newContext("Bearer good")
	var got *pass.Claims
	h := PassAuth(stubVerifier{token: "good", claims: want})(func(c echo.Context) error {
		got = CurrentPass(c)
		return nil
	})
	if err := h(c); err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("CurrentPass = %v, want %v", got, want)
	}
}

func TestRequireClass(t *testing.T) {
	tests := []struct {
		name   string
		claims *pass.Claims
		want   int
	}{
		{"no pass", nil, http.StatusForbidden},
		{"economy", &pass.Claims{Class: "Economy"}, http.StatusForbidden},
		{"business", &pass.Claims{Class: "Business"}, http.StatusNoContent},
	}
	for _, tt := range tests {
		c, rec := newContext("")
		if tt.claims != nil {
			c.Set(PassKey, tt.claims)
		}
		if err := RequireClass("Business")(ok)(c); err != nil {
			t.Fatal(err)
		}
		if rec.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.name, rec.Code, tt.want)
		}
	}
}

func TestRateKey(t *testing.T) {
	tests := []struct {
		strategy string
		withPass bool
		want     string
	}{
		{"ip", false, "gate-rl:ip:10.0.0.7"},
		{"route", false, "gate-rl:route:GET /v1/passes/current"},
		{"ip_route", false, "gate-rl:ip:10.0.0.7:route:GET /v1/passes/current"},
		{"seat", false, "gate-rl:seat:anon"},
		{"seat", true, "gate-rl:seat:3B"},
		{"SEAT_ROUTE", true, "gate-rl:seat:3B:route:GET /v1/passes/current"},
	}
	for _, tt := range tests {
		c, _ := newContext("")
		if tt.withPass {
			c.Set(PassKey, &pass.Claims{Seat: "3B"})
		}
		got := rateKey(config.RateLimitConfig{Prefix: "gate-rl", KeyStrategy: tt.strategy}, c)
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.strategy, got, tt.want)
		}
	}
}

func TestTokenBucketWithoutRedisPassesThrough(t *testing.T) {
	for _, cfg := range []config.RateLimitConfig{{Enabled: false}, {Enabled: true}} {
		c, rec := newContext("")
		mw := NewTokenBucket(cfg, nil, logger.Discard())
		if err := mw(ok)(c); err != nil {
			t.Fatal(err)
		}
		if rec.Code != http.StatusNoContent {
			t.Errorf("enabled=%v: status = %d", cfg.Enabled, rec.Code)
		}
	}
}

