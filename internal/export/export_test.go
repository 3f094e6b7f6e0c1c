package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mmynk/pasajeros/internal/models"
)

var (
	ana = models.Passenger{
		ID:             1704448800000,
		Date:           "2024-01-05",
		Name:           "Ana Pérez",
		Phone:          "55512345",
		Amount:         500,
		PickupLocation: "Terminal",
		Destination:    "Habana - Manzanillo",
		Paid:           true,
		IDCardNumber:   "85010112345",
	}
	obrien = models.Passenger{
		ID:          1704448800001,
		Date:        "2024-01-06",
		Name:        "O'Brien, Jr.",
		Amount:      12.5,
		Destination: "Manzanillo - Habana",
		Traveled:    true,
	}
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, []models.Passenger{ana, obrien}); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}

	wantHeader := "ID,Fecha,Nombre,Carnet ID,Destino,Teléfono,Importe (CUP),Lugar de Recogida,Pagado,Viajó"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}

	wantAna := "1704448800000,2024-01-05,Ana Pérez,85010112345,Habana - Manzanillo,55512345,500,Terminal,Si,No"
	if lines[1] != wantAna {
		t.Errorf("row = %q, want %q", lines[1], wantAna)
	}

	if !strings.Contains(lines[2], `,"O'Brien, Jr.",`) {
		t.Errorf("expected quoted name cell, got %q", lines[2])
	}
	if !strings.HasSuffix(lines[2], ",12.5,,No,Si") {
		t.Errorf("unexpected row tail: %q", lines[2])
	}
}

func TestWriteCSV_EscapesQuotes(t *testing.T) {
	p := obrien
	p.Name = `Juan "El Flaco" Gómez`
	p.PickupLocation = "Calle 1\nEsquina 2"

	var buf bytes.Buffer
	if err := WriteCSV(&buf, []models.Passenger{p}); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"Juan ""El Flaco"" Gómez"`) {
		t.Errorf("quotes not doubled: %q", buf.String())
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if rows[1][2] != p.Name || rows[1][7] != p.PickupLocation {
		t.Errorf("round trip mismatch: %q", rows[1])
	}
}

func TestWriteCSV_QuotesLeadingSpaceAndCarriageReturn(t *testing.T) {
	p := obrien
	p.PickupLocation = " Terminal"
	p.Phone = "555\r123"

	var buf bytes.Buffer
	if err := WriteCSV(&buf, []models.Passenger{p}); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	for _, want := range []string{`," Terminal",`, "\"555\r123\""} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected %q in %q", want, buf.String())
		}
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Errorf("expected trailing newline: %q", buf.String())
	}
}

func TestDetailedText(t *testing.T) {
	got := DetailedText([]models.Passenger{ana, obrien})

	want := strings.Join([]string{
		"--------------------",
		"👤 *Nombre:* Ana Pérez",
		"✅ *Pagado:* Sí",
		"🚌 *Viajó:* No",
		"➡️ *Destino:* Habana - Manzanillo",
		"🆔 *Carnet:* 85010112345",
		"📞 *Teléfono:* 55512345",
		"📍 *Lugar Recogida:* Terminal",
		"💵 *Importe:* 500.00 CUP",
		"--------------------",
		"--------------------",
		"👤 *Nombre:* O'Brien, Jr.",
		"✅ *Pagado:* No",
		"🚌 *Viajó:* Sí",
		"➡️ *Destino:* Manzanillo - Habana",
		"💵 *Importe:* 12.50 CUP",
		"--------------------",
	}, "\n")
	if got != want {
		t.Errorf("DetailedText mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestSummary(t *testing.T) {
	got := Summary([]models.Passenger{ana, obrien})
	want := "👤 Ana Pérez 💳 85010112345 - 📍 Terminal - Pagado \n" +
		"👤 O'Brien, Jr. - 📍  - No Pagado "
	if got != want {
		t.Errorf("Summary mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRender(t *testing.T) {
	now := time.Date(2024, 1, 7, 9, 30, 0, 0, time.UTC)

	t.Run("empty view is rejected", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Render(&buf, FormatCSV, nil, now); !errors.Is(err, ErrNoRecords) {
			t.Errorf("expected ErrNoRecords, got %v", err)
		}
	})

	t.Run("pdf", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Render(&buf, FormatPDF, []models.Passenger{ana, obrien}, now); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
			t.Errorf("output is not a PDF: %q", buf.Bytes()[:min(16, buf.Len())])
		}
	})

	for _, f := range []Format{FormatCSV, FormatText, FormatSummary} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, f, []models.Passenger{ana}, now); err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if !strings.Contains(buf.String(), "Ana Pérez") {
				t.Errorf("output misses the record: %q", buf.String())
			}
		})
	}
}

func TestParseFormatAndFileName(t *testing.T) {
	now := time.Date(2024, 1, 7, 9, 30, 15, 123e6, time.UTC)

	tests := []struct {
		in   string
		want string
	}{
		{"CSV", "registros_pasajeros_2024-01-07.csv"},
		{"text", "registros_pasajeros_detallado_2024-01-07T09-30-15-123Z.txt"},
		{"summary", "lista_pasajeros_2024-01-07.txt"},
		{" pdf ", "registros_pasajeros_2024-01-07.pdf"},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q) failed: %v", tt.in, err)
		}
		if got := FileName(f, now); got != tt.want {
			t.Errorf("FileName(%s) = %q, want %q", f, got, tt.want)
		}
	}

	if _, err := ParseFormat("xlsx"); err == nil {
		t.Error("expected error for unknown format")
	}
}
