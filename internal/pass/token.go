// Package pass turns an issued boarding pass into artifacts that leave the
// booking desk: a signed token the gate can verify and a printable PDF.
package pass

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/airline-boarding/internal/ledger"
	"github.com/iliyamo/airline-boarding/internal/model"
)

// ErrInvalidToken is returned when a pass token fails signature, method,
// issuer or expiry checks.
var ErrInvalidToken = errors.New("invalid boarding pass token")

// Claims is the payload of a signed boarding pass.  The seat code is the
// subject and the pass ID is the token ID.
type Claims struct {
	Passenger      string  `json:"passenger"`
	Seat           string  `json:"seat"`
	Class          string  `json:"class"`
	BaseFare       int     `json:"base_fare"`
	MealPrice      int     `json:"meal_price"`
	Wheelchair     bool    `json:"wheelchair"`
	ExtraLuggageKg float64 `json:"extra_luggage_kg"`
	LuggageCost    int     `json:"luggage_cost"`
	Total          int     `json:"total"`
	Currency       string  `json:"currency"`
	jwt.RegisteredClaims
}

// Signer issues and verifies HS256 pass tokens.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSigner builds a Signer.  Tokens expire ttl after the pass was issued.
func NewSigner(secret, issuer string, ttl time.Duration) *Signer {
	return &Signer{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Sign returns the serialized token for bp and its expiry.
func (s *Signer) Sign(bp model.BoardingPass) (string, time.Time, error) {
	issued := bp.IssuedAt
	if issued.IsZero() {
		issued = time.Now().UTC()
	}
	exp := issued.Add(s.ttl)
	claims := Claims{
		Passenger:      bp.PassengerName,
		Seat:           bp.SeatCode,
		Class:          bp.Class,
		BaseFare:       bp.BaseFare,
		MealPrice:      bp.MealPrice,
		Wheelchair:     bp.Wheelchair,
		ExtraLuggageKg: bp.ExtraLuggageKg,
		LuggageCost:    bp.LuggageCost,
		Total:          bp.Total,
		Currency:       ledger.Currency,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        bp.ID,
			Issuer:    s.issuer,
			Subject:   bp.SeatCode,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign pass: %w", err)
	}
	return signed, exp, nil
}

// Parse verifies raw and returns its claims.  Every failure wraps
// ErrInvalidToken.
func (s *Signer) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
