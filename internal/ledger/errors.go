// Package ledger holds the in-memory seat table for a single flight and
// the operations the booking desk performs on it.  Sentinel errors below
// let the menu tell failure cases apart with errors.Is.
package ledger

import "errors"

// ErrInvalidSeat is returned when a seat code is malformed or points
// outside the cabin.
var ErrInvalidSeat = errors.New("invalid seat")

// ErrAlreadyBooked is returned when booking a seat that already has a
// passenger.
var ErrAlreadyBooked = errors.New("seat already booked")

// ErrNotBooked is returned by cancel, luggage and boarding pass
// operations on a seat without a passenger.
var ErrNotBooked = errors.New("seat not booked")
