// Package queue defines message payloads exchanged over the message broker.
package queue

// Event types published by the booking desk.
const (
    EventSeatBooked     = "seat.booked"
    EventSeatCancelled  = "seat.cancelled"
    EventLuggageUpdated = "luggage.updated"
    EventPassIssued     = "pass.issued"
)

// SeatEvent is published after each successful change to the seat
// ledger.  Pass fields are only set for pass.issued.
type SeatEvent struct {
    Type           string  `json:"type"`
    Seat           string  `json:"seat"`
    Passenger      string  `json:"passenger,omitempty"`
    ExtraLuggageKg float64 `json:"extra_luggage_kg,omitempty"`
    PassID         string  `json:"pass_id,omitempty"`
    Class          string  `json:"class,omitempty"`
    Total          int     `json:"total,omitempty"`
    Currency       string  `json:"currency,omitempty"`
    OccurredAt     string  `json:"occurred_at"`
}
