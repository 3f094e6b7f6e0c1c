package export

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/mmynk/pasajeros/internal/calculator"
	"github.com/mmynk/pasajeros/internal/models"
)

type pdfColumn struct {
	title string
	width float64
	align string
	value func(p models.Passenger) string
}

var pdfColumns = []pdfColumn{
	{"Fecha", 24, "L", func(p models.Passenger) string { return p.Date }},
	{"Nombre", 58, "L", func(p models.Passenger) string { return p.Name }},
	{"Carnet", 30, "L", func(p models.Passenger) string { return p.IDCardNumber }},
	{"Destino", 48, "L", func(p models.Passenger) string { return p.Destination }},
	{"Recogida", 48, "L", func(p models.Passenger) string { return p.PickupLocation }},
	{"Importe", 26, "R", func(p models.Passenger) string { return fmt.Sprintf("%.2f", p.Amount) }},
	{"Pagado", 18, "C", func(p models.Passenger) string { return siNoAccent(p.Paid) }},
	{"Viajó", 18, "C", func(p models.Passenger) string { return siNoAccent(p.Traveled) }},
}

// WritePDF renders a landscape passenger manifest with a totals footer.
func WritePDF(w io.Writer, records []models.Passenger, now time.Time) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Registro de pasajeros", true)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for _, c := range pdfColumns {
			pdf.CellFormat(c.width, 8, tr(c.title), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 10, tr("Registro de pasajeros"))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 9)
		pdf.Cell(0, 6, tr("Generado: "+now.Format("2006-01-02 15:04")))
		pdf.Ln(8)
		header()
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("Página %d", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	for _, p := range records {
		for _, c := range pdfColumns {
			pdf.CellFormat(c.width, 7, tr(truncate(c.value(p), c.width)), "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	totals := calculator.Summarize(records)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Pasajeros: %d   Pagados: %d   Viajaron: %d", totals.Passengers, totals.Paid, totals.Traveled)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Importe total: %.2f CUP   Cobrado: %.2f CUP   Pendiente: %.2f CUP",
		totals.Amount, totals.Collected, totals.Outstanding)))
	pdf.Ln(7)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

// truncate shortens s to roughly fit a cell of the given width at 9pt.
func truncate(s string, width float64) string {
	n := int(width / 1.9)
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "…"
}
