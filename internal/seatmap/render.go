// Package seatmap draws the cabin layout with booked and free seats.
package seatmap

import (
	"fmt"
	"io"
	"strings"

	"github.com/iliyamo/airline-boarding/internal/ledger"
	"github.com/iliyamo/airline-boarding/internal/model"
)

// Section banners are printed right before these 1-based rows.
const (
	WingsStartRow = 6
	WingsEndRow   = 11
	RearExitRow   = 14
)

// Aisle sits before this zero-based column.
const AisleBeforeCol = 2

const (
	bookedMarker = 'X'
	freeMarker   = ' '
	margin       = 16 // left margin before the column header and wing labels
)

// Render writes the seat map for seats, which must be in row-major order
// as returned by ledger.Ledger.Seats.
func Render(w io.Writer, seats []model.Seat) error {
	var b strings.Builder
	pad := strings.Repeat(" ", margin)

	b.WriteString("\n================== AIRLINE SEAT MAP ==================\n")
	b.WriteString(" Legend: [ ] = Available   [X] = Booked\n")
	b.WriteString("         B = Business      E = Economy\n\n")
	b.WriteString("==================== FRONT EXIT ======================\n")
	b.WriteString(pad + "  A      B               C      D\n")

	for row := 1; row <= ledger.Rows; row++ {
		switch row {
		case WingsStartRow:
			b.WriteString(pad + "-- Wings Start --\n")
		case WingsEndRow:
			b.WriteString(pad + "-- Wings End --\n")
		case RearExitRow:
			b.WriteString("==================== REAR EXIT =======================\n")
		}
		class := 'E'
		if ledger.IsBusiness(row) {
			class = 'B'
		}
		fmt.Fprintf(&b, "Row %2d [%c] :     ", row, class)
		for col := 0; col < ledger.Columns; col++ {
			if col == AisleBeforeCol {
				b.WriteString("         ")
			}
			marker := freeMarker
			if i := ledger.Index(model.Coordinate{Row: row, Col: col}); i < len(seats) && seats[i].Booked {
				marker = bookedMarker
			}
			fmt.Fprintf(&b, "[%c]    ", marker)
		}
		b.WriteString("\n")
	}
	b.WriteString("=======================================================\n")

	_, err := io.WriteString(w, b.String())
	return err
}
