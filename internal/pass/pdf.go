package pass

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/iliyamo/airline-boarding/internal/ledger"
	"github.com/iliyamo/airline-boarding/internal/model"
)

// Exporter writes PDF boarding passes into Dir.
type Exporter struct {
	Dir string
}

// Export renders bp into Dir/<seat>-<pass id>.pdf and returns the path.
// token is encoded in the QR code; when it is empty a plain summary is
// encoded instead.
func (e Exporter) Export(bp model.BoardingPass, token string) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create pass dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.pdf", fileSafe(bp.SeatCode), bp.ID)
	path := filepath.Join(e.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create pass file: %w", err)
	}
	if err := WritePDF(f, bp, token); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close pass file: %w", err)
	}
	return path, nil
}

// WritePDF renders a single-page boarding pass to w.
func WritePDF(w io.Writer, bp model.BoardingPass, token string) error {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// --- Header ---
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "BOARDING PASS", "", 1, "C", false, 0, "")
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(12, pdf.GetY()+2, 136, pdf.GetY()+2)
	pdf.Ln(6)

	// --- Itemized receipt + QR ---
	yStart := pdf.GetY()
	rows := [][2]string{
		{"Passenger", bp.PassengerName},
		{"Seat", bp.SeatCode},
		{"Class", bp.Class},
		{"Seat Price", money(bp.BaseFare)},
		{"Meal Price", money(bp.MealPrice)},
		{"Wheelchair", yesNo(bp.Wheelchair)},
		{"Extra Luggage", fmt.Sprintf("%s kg (%s)", FormatKg(bp.ExtraLuggageKg), money(bp.LuggageCost))},
		{"Luggage Allow", bp.LuggageAllowance},
	}
	for _, r := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(32, 7, r[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(58, 7, tr(r[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(90, 9, "Total  "+money(bp.Total), "", 1, "L", true, 0, "")

	payload := token
	if payload == "" {
		payload = fmt.Sprintf("PASS %s|%s|%s|%s|%d", bp.ID, bp.SeatCode, bp.PassengerName, bp.Class, bp.Total)
	}
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("encode pass qr: %w", err)
	}
	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(png))
	pdf.ImageOptions("qr", 104, yStart, 32, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	// --- Footer ---
	pdf.SetY(190)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Pass ID "+bp.ID, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "Issued "+bp.IssuedAt.Format("2006-01-02 15:04 MST"), "", 1, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pass pdf: %w", err)
	}
	return nil
}

// FormatKg prints a weight with six significant digits and no trailing
// zeros, e.g. 10, 2.5, 1e+06.
func FormatKg(kg float64) string {
	return strconv.FormatFloat(kg, 'g', 6, 64)
}

func money(amount int) string { return fmt.Sprintf("%s %d", ledger.Currency, amount) }

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// fileSafe keeps letters and digits of a seat code for use in a file name.
func fileSafe(code string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "SEAT"
	}
	return b.String()
}
