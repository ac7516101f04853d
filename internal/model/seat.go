package model

import "fmt"

// Coordinate identifies one physical seat.  Row is 1-based as printed
// on the aircraft; Col is the zero-based column offset (A=0, B=1, ...).
type Coordinate struct {
    Row int // 1..rows
    Col int // 0..columns-1
}

// Label renders the canonical seat code, e.g. "3B".
func (c Coordinate) Label() string {
    return fmt.Sprintf("%d%c", c.Row, rune('A'+c.Col))
}

// Seat is the record kept for every seat on the flight.  A seat that is
// not booked always carries zero values in every mutable field.
//
// Fields:
//  Position       – fixed coordinate of the seat.
//  Booked         – whether a passenger holds the seat.
//  PassengerName  – name entered at booking time.
//  SeatCode       – seat code exactly as typed when booking (display only).
//  MealPrice      – price of the meal picked when the pass was issued.
//  Wheelchair     – wheelchair assistance requested.
//  ExtraLuggageKg – extra luggage weight in kilograms.
type Seat struct {
    Position       Coordinate
    Booked         bool
    PassengerName  string
    SeatCode       string
    MealPrice      int
    Wheelchair     bool
    ExtraLuggageKg float64
}

// Reset clears every mutable field while keeping the seat position.
func (s *Seat) Reset() {
    *s = Seat{Position: s.Position}
}
