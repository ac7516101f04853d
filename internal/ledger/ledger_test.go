package ledger

import (
	"errors"
	"fmt"
	"testing"

	"github.com/iliyamo/airline-boarding/internal/model"
)

func TestParseSeatCodeCoversEveryIndexOnce(t *testing.T) {
	seen := make(map[int]string, TotalSeats)
	for row := 1; row <= Rows; row++ {
		for col := 0; col < Columns; col++ {
			for _, code := range []string{
				fmt.Sprintf("%d%c", row, 'A'+col),
				fmt.Sprintf("%d%c", row, 'a'+col),
			} {
				c, err := ParseSeatCode(code)
				if err != nil {
					t.Fatalf("ParseSeatCode(%q) returned error: %v", code, err)
				}
				if c.Row != row || c.Col != col {
					t.Fatalf("ParseSeatCode(%q) = %+v, want row %d col %d", code, c, row, col)
				}
				idx := Index(c)
				if prev, ok := seen[idx]; ok && prev != fmt.Sprintf("%d%c", row, 'A'+col) {
					t.Fatalf("index %d reached by %s and %q", idx, prev, code)
				}
				seen[idx] = fmt.Sprintf("%d%c", row, 'A'+col)
			}
		}
	}
	if len(seen) != TotalSeats {
		t.Fatalf("expected %d distinct indices, got %d", TotalSeats, len(seen))
	}
	for i := 0; i < TotalSeats; i++ {
		if _, ok := seen[i]; !ok {
			t.Errorf("index %d is not reachable", i)
		}
	}
}

func TestParseSeatCodeRejects(t *testing.T) {
	for _, code := range []string{"", "3", "0A", "16A", "3E", "3@", "100A", "12AB", "xB", "-1B", "x1B"} {
		if _, err := ParseSeatCode(code); !errors.Is(err, ErrInvalidSeat) {
			t.Errorf("ParseSeatCode(%q) error = %v, want ErrInvalidSeat", code, err)
		}
	}
}

func TestParseSeatCodeLenientRow(t *testing.T) {
	tests := []struct {
		code string
		want model.Coordinate
	}{
		{"+3B", model.Coordinate{Row: 3, Col: 1}},
		{"1xD", model.Coordinate{Row: 1, Col: 3}},
		{" 9c", model.Coordinate{Row: 9, Col: 2}},
		{"15d", model.Coordinate{Row: 15, Col: 3}},
	}
	for _, tt := range tests {
		got, err := ParseSeatCode(tt.code)
		if err != nil {
			t.Errorf("ParseSeatCode(%q) returned error: %v", tt.code, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSeatCode(%q) = %+v, want %+v", tt.code, got, tt.want)
		}
	}
}

func TestNewLedgerIsEmpty(t *testing.T) {
	l := New()
	seats := l.Seats()
	if len(seats) != TotalSeats {
		t.Fatalf("expected %d seats, got %d", TotalSeats, len(seats))
	}
	for i, s := range seats {
		if s.Booked || s.PassengerName != "" || s.MealPrice != 0 || s.Wheelchair || s.ExtraLuggageKg != 0 {
			t.Errorf("seat %d not at defaults: %+v", i, s)
		}
		if Index(s.Position) != i {
			t.Errorf("seat %d has position %+v", i, s.Position)
		}
	}
	if l.BookedCount() != 0 {
		t.Errorf("expected 0 booked seats, got %d", l.BookedCount())
	}
}

func TestBookTwiceKeepsFirstPassenger(t *testing.T) {
	l := New()
	if err := l.Book("5C", "Alice"); err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if err := l.SetExtraLuggage("5C", 4); err != nil {
		t.Fatalf("SetExtraLuggage returned error: %v", err)
	}
	before, _ := l.Seat("5C")

	if err := l.Book("5c", "Mallory"); !errors.Is(err, ErrAlreadyBooked) {
		t.Fatalf("second Book error = %v, want ErrAlreadyBooked", err)
	}
	after, _ := l.Seat("5C")
	if after != before {
		t.Errorf("record changed after failed booking: before %+v after %+v", before, after)
	}
}

func TestBookInvalidSeat(t *testing.T) {
	l := New()
	if err := l.Book("16A", "Alice"); !errors.Is(err, ErrInvalidSeat) {
		t.Errorf("Book error = %v, want ErrInvalidSeat", err)
	}
	if l.BookedCount() != 0 {
		t.Errorf("expected no bookings, got %d", l.BookedCount())
	}
}

func TestBookStoresTypedCode(t *testing.T) {
	l := New()
	if err := l.Book("3b", "Alice"); err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	s, err := l.Seat("3B")
	if err != nil {
		t.Fatalf("Seat returned error: %v", err)
	}
	if s.SeatCode != "3b" {
		t.Errorf("expected stored code 3b, got %q", s.SeatCode)
	}
}

func TestCancelResetsRecord(t *testing.T) {
	l := New()
	if err := l.Book("7A", "Alice"); err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if err := l.SetExtraLuggage("7A", 12.5); err != nil {
		t.Fatalf("SetExtraLuggage returned error: %v", err)
	}
	if _, err := l.IssueBoardingPass("7A", 4, true); err != nil {
		t.Fatalf("IssueBoardingPass returned error: %v", err)
	}

	if err := l.Cancel("7A"); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	s, _ := l.Seat("7A")
	want := model.Seat{Position: model.Coordinate{Row: 7, Col: 0}}
	if s != want {
		t.Fatalf("record after cancel = %+v, want %+v", s, want)
	}

	if err := l.Book("7A", "Bob"); err != nil {
		t.Fatalf("rebook returned error: %v", err)
	}
	s, _ = l.Seat("7A")
	if s.PassengerName != "Bob" || s.MealPrice != 0 || s.Wheelchair || s.ExtraLuggageKg != 0 {
		t.Errorf("rebooked seat carries stale data: %+v", s)
	}
}

func TestCancelErrors(t *testing.T) {
	l := New()
	if err := l.Cancel("2A"); !errors.Is(err, ErrNotBooked) {
		t.Errorf("Cancel free seat error = %v, want ErrNotBooked", err)
	}
	if err := l.Cancel("2Z"); !errors.Is(err, ErrInvalidSeat) {
		t.Errorf("Cancel invalid seat error = %v, want ErrInvalidSeat", err)
	}
}

func TestSetExtraLuggageOverwrites(t *testing.T) {
	l := New()
	if err := l.Book("9D", "Alice"); err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	for _, kg := range []float64{5, 3.5, -2} {
		if err := l.SetExtraLuggage("9D", kg); err != nil {
			t.Fatalf("SetExtraLuggage(%v) returned error: %v", kg, err)
		}
		s, _ := l.Seat("9D")
		if s.ExtraLuggageKg != kg {
			t.Errorf("expected %v kg, got %v", kg, s.ExtraLuggageKg)
		}
	}
	if err := l.SetExtraLuggage("9C", 1); !errors.Is(err, ErrNotBooked) {
		t.Errorf("SetExtraLuggage on free seat error = %v, want ErrNotBooked", err)
	}
}

func TestBoardingPassBusinessTotal(t *testing.T) {
	l := New()
	if err := l.Book("2A", "Alice"); err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if err := l.SetExtraLuggage("2A", 10); err != nil {
		t.Fatalf("SetExtraLuggage returned error: %v", err)
	}
	bp, err := l.IssueBoardingPass("2A", 2, false)
	if err != nil {
		t.Fatalf("IssueBoardingPass returned error: %v", err)
	}
	if bp.Class != ClassBusiness || bp.BaseFare != 40000 {
		t.Errorf("expected Business at 40000, got %s at %d", bp.Class, bp.BaseFare)
	}
	if bp.MealPrice != 5000 || bp.LuggageCost != 25000 {
		t.Errorf("expected meal 5000 and luggage 25000, got %d and %d", bp.MealPrice, bp.LuggageCost)
	}
	if bp.Total != 70000 {
		t.Errorf("expected total 70000, got %d", bp.Total)
	}
	if bp.LuggageAllowance != BusinessAllowance {
		t.Errorf("unexpected allowance %q", bp.LuggageAllowance)
	}
	if bp.ID == "" || bp.IssuedAt.IsZero() {
		t.Errorf("pass is missing id or issue time: %+v", bp)
	}
}

func TestBoardingPassEconomyInvalidMeal(t *testing.T) {
	l := New()
	if err := l.Book("4B", "Carol"); err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if err := l.SetExtraLuggage("4B", 1.3); err != nil {
		t.Fatalf("SetExtraLuggage returned error: %v", err)
	}
	for _, choice := range []int{0, 9, -1} {
		bp, err := l.IssueBoardingPass("4B", choice, false)
		if err != nil {
			t.Fatalf("IssueBoardingPass returned error: %v", err)
		}
		if bp.MealPrice != 0 {
			t.Errorf("choice %d: expected meal price 0, got %d", choice, bp.MealPrice)
		}
		if bp.Class != ClassEconomy || bp.LuggageAllowance != EconomyAllowance {
			t.Errorf("choice %d: expected economy pass, got %+v", choice, bp)
		}
		if want := EconomyFare + LuggageCost(1.3); bp.Total != want {
			t.Errorf("choice %d: expected total %d, got %d", choice, want, bp.Total)
		}
	}
}

func TestBoardingPassOnFreeSeatDoesNotMutate(t *testing.T) {
	l := New()
	before := l.Seats()
	if _, err := l.IssueBoardingPass("6A", 1, true); !errors.Is(err, ErrNotBooked) {
		t.Fatalf("IssueBoardingPass error = %v, want ErrNotBooked", err)
	}
	if _, err := l.IssueBoardingPass("6E", 1, true); !errors.Is(err, ErrInvalidSeat) {
		t.Fatalf("IssueBoardingPass error = %v, want ErrInvalidSeat", err)
	}
	after := l.Seats()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("seat %d mutated: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestBoardingPassWritesChoices(t *testing.T) {
	l := New()
	if err := l.Book("10C", "Dan"); err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if _, err := l.IssueBoardingPass("10C", 3, true); err != nil {
		t.Fatalf("IssueBoardingPass returned error: %v", err)
	}
	s, _ := l.Seat("10C")
	if s.MealPrice != 3000 || !s.Wheelchair {
		t.Errorf("choices not recorded: %+v", s)
	}
}

func TestAliceBobScenario(t *testing.T) {
	l := New()
	if err := l.Book("3B", "Alice"); err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	bp, err := l.IssueBoardingPass("3B", 1, true)
	if err != nil {
		t.Fatalf("IssueBoardingPass returned error: %v", err)
	}
	if bp.Total != 42000 || !bp.Wheelchair {
		t.Fatalf("expected total 42000 with wheelchair, got %d wheelchair=%v", bp.Total, bp.Wheelchair)
	}
	if err := l.Cancel("3B"); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	s, _ := l.Seat("3B")
	if s.Booked || s.PassengerName != "" || s.MealPrice != 0 || s.Wheelchair {
		t.Fatalf("expected defaults after cancel, got %+v", s)
	}
	if err := l.Book("3B", "Bob"); err != nil {
		t.Fatalf("rebook returned error: %v", err)
	}
	s, _ = l.Seat("3B")
	if !s.Booked || s.PassengerName != "Bob" || s.MealPrice != 0 || s.ExtraLuggageKg != 0 || s.Wheelchair {
		t.Errorf("unexpected record for Bob: %+v", s)
	}
}
