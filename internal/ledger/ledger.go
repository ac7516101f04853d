package ledger

import (
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/iliyamo/airline-boarding/internal/model"
	"github.com/iliyamo/airline-boarding/internal/utils"
)

// Ledger is the seat table of one flight.  It is not safe for concurrent
// use; a single control loop owns it.
type Ledger struct {
	seats [TotalSeats]model.Seat
}

// New builds an empty ledger with one unbooked record per seat.
func New() *Ledger {
	l := &Ledger{}
	for i := range l.seats {
		l.seats[i].Position = model.Coordinate{Row: i/Columns + 1, Col: i % Columns}
	}
	return l
}

// ParseSeatCode converts a seat code such as "3B" into a coordinate.
// Codes are 2 or 3 bytes long: a row number followed by a column letter
// (case-insensitive).  The row part is parsed leniently with
// utils.LeadingInt, so a non-numeric prefix reads as row 0 and is then
// rejected by the bounds check.
func ParseSeatCode(code string) (model.Coordinate, error) {
	if len(code) < 2 || len(code) > 3 {
		return model.Coordinate{}, ErrInvalidSeat
	}
	row := utils.LeadingInt(code[:len(code)-1])
	if row < 1 || row > Rows {
		return model.Coordinate{}, ErrInvalidSeat
	}
	col := int(unicode.ToUpper(rune(code[len(code)-1]))) - firstColumn
	if col < 0 || col >= Columns {
		return model.Coordinate{}, ErrInvalidSeat
	}
	return model.Coordinate{Row: row, Col: col}, nil
}

// Index maps a coordinate to its slot in the seat table.
func Index(c model.Coordinate) int {
	return (c.Row-1)*Columns + c.Col
}

// Seats returns a copy of every record in row-major order.
func (l *Ledger) Seats() []model.Seat {
	out := make([]model.Seat, len(l.seats))
	copy(out, l.seats[:])
	return out
}

// Seat returns a copy of the record addressed by code.
func (l *Ledger) Seat(code string) (model.Seat, error) {
	s, err := l.lookup(code)
	if err != nil {
		return model.Seat{}, err
	}
	return *s, nil
}

// BookedCount returns the number of booked seats.
func (l *Ledger) BookedCount() int {
	n := 0
	for i := range l.seats {
		if l.seats[i].Booked {
			n++
		}
	}
	return n
}

// Book assigns the seat to a passenger.  The code is stored as typed so
// the boarding pass shows what the operator entered.
func (l *Ledger) Book(code, name string) error {
	s, err := l.lookup(code)
	if err != nil {
		return err
	}
	if s.Booked {
		return ErrAlreadyBooked
	}
	s.Booked = true
	s.PassengerName = name
	s.SeatCode = code
	return nil
}

// Cancel releases a booked seat and clears every field of its record.
func (l *Ledger) Cancel(code string) error {
	s, err := l.bookedSeat(code)
	if err != nil {
		return err
	}
	s.Reset()
	return nil
}

// SetExtraLuggage overwrites the extra luggage weight of a booked seat.
// Negative weights are stored as given.
func (l *Ledger) SetExtraLuggage(code string, kg float64) error {
	s, err := l.bookedSeat(code)
	if err != nil {
		return err
	}
	s.ExtraLuggageKg = kg
	return nil
}

// IssueBoardingPass records the meal and wheelchair choices on a booked
// seat and returns the priced pass.  A meal choice outside the menu is
// priced at 0.  Nothing is written when the seat is invalid or free.
func (l *Ledger) IssueBoardingPass(code string, mealChoice int, wheelchair bool) (model.BoardingPass, error) {
	s, err := l.bookedSeat(code)
	if err != nil {
		return model.BoardingPass{}, err
	}
	s.MealPrice = MealPrice(mealChoice)
	s.Wheelchair = wheelchair

	row := s.Position.Row
	bp := model.BoardingPass{
		ID:               uuid.NewString(),
		IssuedAt:         time.Now().UTC(),
		PassengerName:    s.PassengerName,
		SeatCode:         s.SeatCode,
		Class:            ClassOf(row),
		BaseFare:         baseFare(row),
		MealPrice:        s.MealPrice,
		Wheelchair:       s.Wheelchair,
		ExtraLuggageKg:   s.ExtraLuggageKg,
		LuggageCost:      LuggageCost(s.ExtraLuggageKg),
		LuggageAllowance: luggageAllowance(row),
	}
	bp.Total = bp.BaseFare + bp.MealPrice + bp.LuggageCost
	return bp, nil
}

func (l *Ledger) lookup(code string) (*model.Seat, error) {
	c, err := ParseSeatCode(code)
	if err != nil {
		return nil, err
	}
	return &l.seats[Index(c)], nil
}

// bookedSeat resolves code and requires the seat to be booked.
func (l *Ledger) bookedSeat(code string) (*model.Seat, error) {
	s, err := l.lookup(code)
	if err != nil {
		return nil, err
	}
	if !s.Booked {
		return nil, ErrNotBooked
	}
	return s, nil
}
