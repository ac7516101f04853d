package model

import "time"

// BoardingPass is the priced summary produced for a booked seat.  All
// amounts are whole units of the fare currency.
type BoardingPass struct {
    ID               string    // unique pass identifier (UUID)
    IssuedAt         time.Time // UTC issue time
    PassengerName    string
    SeatCode         string // seat code as typed when booking
    Class            string // Business | Economy
    BaseFare         int
    MealPrice        int
    Wheelchair       bool
    ExtraLuggageKg   float64
    LuggageCost      int
    LuggageAllowance string
    Total            int
}
