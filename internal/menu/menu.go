// Package menu runs the booking desk: a numbered text menu over the seat
// ledger, read from one stream and printed to another.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/airline-boarding/internal/ledger"
	"github.com/iliyamo/airline-boarding/internal/model"
	"github.com/iliyamo/airline-boarding/internal/pass"
	"github.com/iliyamo/airline-boarding/internal/queue"
	"github.com/iliyamo/airline-boarding/internal/seatmap"
	"github.com/iliyamo/airline-boarding/internal/utils"
)

// Menu choices.
const (
	ChoiceShowSeats = iota + 1
	ChoiceBook
	ChoiceCancel
	ChoiceBoardingPass
	ChoiceLuggage
	ChoiceExit
)

// Publisher sends ledger events somewhere outside the desk.
type Publisher interface {
	Publish(ctx context.Context, event queue.SeatEvent) error
}

// Signer turns a boarding pass into a verifiable token.
type Signer interface {
	Sign(bp model.BoardingPass) (string, time.Time, error)
}

// Exporter saves a printable copy of a boarding pass and returns where.
type Exporter interface {
	Export(bp model.BoardingPass, token string) (string, error)
}

// Menu is the booking desk control loop.  It owns the ledger for as long
// as Run executes.
type Menu struct {
	ledger   *ledger.Ledger
	in       *prompt
	out      io.Writer
	log      *slog.Logger
	signer   Signer
	exporter Exporter
	events   Publisher
}

// Option configures optional collaborators of a Menu.
type Option func(*Menu)

// WithSigner prints a signed token under every boarding pass.
func WithSigner(s Signer) Option { return func(m *Menu) { m.signer = s } }

// WithExporter saves a PDF of every boarding pass.
func WithExporter(e Exporter) Option { return func(m *Menu) { m.exporter = e } }

// WithPublisher publishes an event after every ledger change.
func WithPublisher(p Publisher) Option { return func(m *Menu) { m.events = p } }

// New builds a Menu reading operator input from in and printing to out.
func New(l *ledger.Ledger, in io.Reader, out io.Writer, log *slog.Logger, opts ...Option) *Menu {
	m := &Menu{ledger: l, in: newPrompt(in), out: out, log: log}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run presents the menu until the operator picks Exit or input ends.
// Both are a normal finish and return nil.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.printMenu()
		tok, err := m.in.token()
		if err != nil {
			return endOfInput(err)
		}
		choice, _ := strconv.Atoi(tok) // 0 on anything but a plain integer

		switch choice {
		case ChoiceShowSeats:
			err = seatmap.Render(m.out, m.ledger.Seats())
		case ChoiceBook:
			err = m.bookSeat(ctx)
		case ChoiceCancel:
			err = m.cancelSeat(ctx)
		case ChoiceBoardingPass:
			err = m.printBoardingPass(ctx)
		case ChoiceLuggage:
			err = m.addExtraLuggage(ctx)
		case ChoiceExit:
			m.printf("Exiting system. Goodbye!\n")
			m.log.Info("desk closed", "booked", m.ledger.BookedCount())
			return nil
		default:
			m.printf("Invalid choice. Try again.\n")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func (m *Menu) printMenu() {
	m.printf("\n========= Airline Reservation Menu =========\n")
	m.printf("1. Show Available Seats\n")
	m.printf("2. Book a Seat\n")
	m.printf("3. Cancel a Seat\n")
	m.printf("4. Print Boarding Pass\n")
	m.printf("5. Add Extra Luggage\n")
	m.printf("6. Exit\n")
	m.printf("Choose an option: ")
}

func (m *Menu) bookSeat(ctx context.Context) error {
	m.printf("Enter seat code to book (e.g. 3B): ")
	code, err := m.in.token()
	if err != nil {
		return err
	}
	if s, err := m.ledger.Seat(code); err != nil || s.Booked {
		m.log.Debug("booking refused", "seat", code, "booked", s.Booked, "err", err)
		m.printf("Invalid or already booked seat.\n\n")
		return nil
	}
	m.in.skipOne()
	m.printf("Enter passenger name: ")
	name, err := m.in.line()
	if err != nil {
		return err
	}
	if err := m.ledger.Book(code, name); err != nil {
		m.printf("Invalid or already booked seat.\n\n")
		return nil
	}
	m.log.Info("seat booked", "seat", code, "passenger", name)
	m.printf("Seat %s successfully booked for %s.\n\n", code, name)
	m.publish(ctx, queue.SeatEvent{Type: queue.EventSeatBooked, Seat: code, Passenger: name})
	return nil
}

func (m *Menu) cancelSeat(ctx context.Context) error {
	m.printf("Enter seat code to cancel (e.g. 3B): ")
	code, err := m.in.token()
	if err != nil {
		return err
	}
	if err := m.ledger.Cancel(code); err != nil {
		m.log.Debug("cancel refused", "seat", code, "err", err)
		m.printf("Invalid or not booked seat.\n\n")
		return nil
	}
	m.log.Info("seat cancelled", "seat", code)
	m.printf("Seat %s successfully cancelled.\n\n", code)
	m.publish(ctx, queue.SeatEvent{Type: queue.EventSeatCancelled, Seat: code})
	return nil
}

func (m *Menu) addExtraLuggage(ctx context.Context) error {
	m.printf("Enter seat code to add luggage for (e.g. 3B): ")
	code, err := m.in.token()
	if err != nil {
		return err
	}
	if !m.isBooked(code) {
		m.printf("Invalid or unbooked seat.\n")
		return nil
	}
	m.printf("Enter extra luggage weight in kg: ")
	tok, err := m.in.token()
	if err != nil {
		return err
	}
	weight := utils.LeadingFloat(tok)
	if err := m.ledger.SetExtraLuggage(code, weight); err != nil {
		m.printf("Invalid or unbooked seat.\n")
		return nil
	}
	m.log.Info("extra luggage set", "seat", code, "kg", weight)
	m.printf("Extra luggage of %skg added.\n", pass.FormatKg(weight))
	m.publish(ctx, queue.SeatEvent{Type: queue.EventLuggageUpdated, Seat: code, ExtraLuggageKg: weight})
	return nil
}

func (m *Menu) printBoardingPass(ctx context.Context) error {
	m.printf("Enter seat code to print boarding pass (e.g. 3B): ")
	code, err := m.in.token()
	if err != nil {
		return err
	}
	if !m.isBooked(code) {
		m.printf("Invalid or unbooked seat.\n")
		return nil
	}
	meal, err := m.chooseMeal()
	if err != nil {
		return err
	}
	wheelchair, err := m.requestWheelchair()
	if err != nil {
		return err
	}
	bp, err := m.ledger.IssueBoardingPass(code, meal, wheelchair)
	if err != nil {
		m.printf("Invalid or unbooked seat.\n")
		return nil
	}
	m.log.Info("boarding pass issued", "seat", bp.SeatCode, "pass_id", bp.ID, "total", bp.Total)

	m.printf("\n========= BOARDING PASS =========\n")
	m.printf("Passenger       : %s\n", bp.PassengerName)
	m.printf("Seat            : %s\n", bp.SeatCode)
	m.printf("Class           : %s\n", bp.Class)
	m.printf("Seat Price      : %s %d\n", ledger.Currency, bp.BaseFare)
	m.printf("Meal Price      : %s %d\n", ledger.Currency, bp.MealPrice)
	m.printf("Wheelchair      : %s\n", yesNo(bp.Wheelchair))
	m.printf("Extra Luggage   : %s kg (%s %d)\n", pass.FormatKg(bp.ExtraLuggageKg), ledger.Currency, bp.LuggageCost)
	m.printf("Luggage Allow   : %s\n", bp.LuggageAllowance)
	m.printf("Total           : %s %d\n", ledger.Currency, bp.Total)
	m.printf("=================================\n\n")

	m.deliverPass(bp)
	m.publish(ctx, queue.SeatEvent{
		Type:      queue.EventPassIssued,
		Seat:      bp.SeatCode,
		Passenger: bp.PassengerName,
		PassID:    bp.ID,
		Class:     bp.Class,
		Total:     bp.Total,
		Currency:  ledger.Currency,
	})
	return nil
}

// deliverPass signs and exports bp when those collaborators are set.
// Failures are reported but never undo the issued pass.
func (m *Menu) deliverPass(bp model.BoardingPass) {
	var token string
	if m.signer != nil {
		t, exp, err := m.signer.Sign(bp)
		if err != nil {
			m.log.Error("sign boarding pass", "pass_id", bp.ID, "err", err)
			m.printf("Warning: boarding pass could not be signed.\n")
		} else {
			token = t
			m.printf("Pass token (valid until %s):\n%s\n\n", exp.Format(time.RFC3339), token)
		}
	}
	if m.exporter != nil {
		path, err := m.exporter.Export(bp, token)
		if err != nil {
			m.log.Error("export boarding pass", "pass_id", bp.ID, "err", err)
			m.printf("Warning: boarding pass PDF could not be saved.\n")
			return
		}
		m.printf("Boarding pass saved to %s\n\n", path)
	}
}

func (m *Menu) chooseMeal() (int, error) {
	m.printf("\nSelect Meal Option:\n")
	for i, meal := range ledger.Meals {
		m.printf("%d. %-14s (%s %d)\n", i+1, meal.Name, ledger.Currency, meal.Price)
	}
	m.printf("Enter choice (1-%d): ", len(ledger.Meals))
	tok, err := m.in.token()
	if err != nil {
		return 0, err
	}
	return utils.LeadingInt(tok), nil
}

func (m *Menu) requestWheelchair() (bool, error) {
	m.printf("Do you require a wheelchair? (y/n): ")
	tok, err := m.in.token()
	if err != nil {
		return false, err
	}
	return strings.ToLower(tok[:1]) == "y", nil
}

func (m *Menu) isBooked(code string) bool {
	s, err := m.ledger.Seat(code)
	return err == nil && s.Booked
}

// publish sends event when a publisher is configured.  Delivery is
// best-effort: failures are logged only.
func (m *Menu) publish(ctx context.Context, event queue.SeatEvent) {
	if m.events == nil {
		return
	}
	event.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	if err := m.events.Publish(ctx, event); err != nil {
		m.log.Warn("publish ledger event", "type", event.Type, "seat", event.Seat, "err", err)
	}
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// endOfInput turns a closed input stream into a normal finish.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
