package seatmap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iliyamo/airline-boarding/internal/ledger"
)

func renderLines(t *testing.T, l *ledger.Ledger) []string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, l.Seats()); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	return strings.Split(buf.String(), "\n")
}

func rowLine(t *testing.T, lines []string, prefix string) (int, string) {
	t.Helper()
	for i, line := range lines {
		if strings.HasPrefix(line, prefix) {
			return i, line
		}
	}
	t.Fatalf("no line starting with %q", prefix)
	return -1, ""
}

func TestRenderEmptyCabin(t *testing.T) {
	lines := renderLines(t, ledger.New())
	rows, free := 0, 0
	for _, line := range lines {
		if !strings.HasPrefix(line, "Row ") {
			continue
		}
		rows++
		if strings.Contains(line, "[X]") {
			t.Errorf("empty cabin shows a booked seat: %q", line)
		}
		free += strings.Count(line, "[ ]")
	}
	if rows != ledger.Rows || free != ledger.TotalSeats {
		t.Errorf("expected %d rows and %d free seats, got %d and %d", ledger.Rows, ledger.TotalSeats, rows, free)
	}

	_, first := rowLine(t, lines, "Row  1 ")
	if first != "Row  1 [B] :     [ ]    [ ]             [ ]    [ ]    " {
		t.Errorf("unexpected row 1 line: %q", first)
	}
	_, fourth := rowLine(t, lines, "Row  4 ")
	if !strings.HasPrefix(fourth, "Row  4 [E] :") {
		t.Errorf("row 4 should be economy: %q", fourth)
	}
}

func TestRenderBannersBeforeFixedRows(t *testing.T) {
	lines := renderLines(t, ledger.New())
	tests := []struct {
		row    string
		banner string
	}{
		{"Row  6 ", "-- Wings Start --"},
		{"Row 11 ", "-- Wings End --"},
		{"Row 14 ", "REAR EXIT"},
	}
	for _, tt := range tests {
		i, _ := rowLine(t, lines, tt.row)
		if !strings.Contains(lines[i-1], tt.banner) {
			t.Errorf("expected %q before %q, got %q", tt.banner, tt.row, lines[i-1])
		}
	}
}

func TestRenderMarksBookedSeats(t *testing.T) {
	l := ledger.New()
	for _, code := range []string{"1A", "12D"} {
		if err := l.Book(code, "Passenger"); err != nil {
			t.Fatalf("Book(%s) returned error: %v", code, err)
		}
	}
	lines := renderLines(t, l)

	_, first := rowLine(t, lines, "Row  1 ")
	if !strings.HasPrefix(first, "Row  1 [B] :     [X]    [ ]") {
		t.Errorf("seat 1A should be booked: %q", first)
	}
	_, twelfth := rowLine(t, lines, "Row 12 ")
	if !strings.HasSuffix(twelfth, "[ ]    [X]    ") {
		t.Errorf("seat 12D should be booked: %q", twelfth)
	}
}
