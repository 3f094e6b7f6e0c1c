// Package export renders a view of the passenger collection into the formats
// offered to the user: CSV, a detailed text listing, a one-line-per-passenger
// summary for chat apps, and a PDF manifest.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mmynk/pasajeros/internal/models"
)

// ErrNoRecords is returned when asked to export an empty view.
var ErrNoRecords = errors.New("no records to export")

// Format names an export format.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatText    Format = "text"
	FormatSummary Format = "summary"
	FormatPDF     Format = "pdf"
)

// ParseFormat accepts the names above, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatText, FormatSummary, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// ContentType is the MIME type of the rendered output.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/plain; charset=utf-8"
	}
}

// FileName suggests a download name for an export made at now.
func FileName(f Format, now time.Time) string {
	switch f {
	case FormatCSV:
		return "registros_pasajeros_" + now.Format("2006-01-02") + ".csv"
	case FormatText:
		utc := now.UTC()
		return fmt.Sprintf("registros_pasajeros_detallado_%s-%03dZ.txt",
			utc.Format("2006-01-02T15-04-05"), utc.Nanosecond()/int(time.Millisecond))
	case FormatSummary:
		return "lista_pasajeros_" + now.Format("2006-01-02") + ".txt"
	case FormatPDF:
		return "registros_pasajeros_" + now.Format("2006-01-02") + ".pdf"
	}
	return "registros_pasajeros"
}

// Render writes records to w in format f.
func Render(w io.Writer, f Format, records []models.Passenger, now time.Time) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	switch f {
	case FormatCSV:
		return WriteCSV(w, records)
	case FormatText:
		_, err := io.WriteString(w, DetailedText(records))
		return err
	case FormatSummary:
		_, err := io.WriteString(w, Summary(records))
		return err
	case FormatPDF:
		return WritePDF(w, records, now)
	}
	return fmt.Errorf("unknown export format %q", f)
}

func siNo(b bool) string {
	if b {
		return "Si"
	}
	return "No"
}
