package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mmynk/pasajeros/internal/models"
	"github.com/mmynk/pasajeros/internal/query"
)

// CSVHeader is the first row of every CSV export.
var CSVHeader = []string{
	"ID", "Fecha", "Nombre", "Carnet ID", "Destino", "Teléfono",
	"Importe (CUP)", "Lugar de Recogida", "Pagado", "Viajó",
}

// WriteCSV writes the header and one row per record. Cells containing a
// comma, quote, carriage return or line break, and cells starting with a
// space, are quoted with inner quotes doubled. Every row ends with "\n".
func WriteCSV(w io.Writer, records []models.Passenger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, p := range records {
		row := []string{
			strconv.FormatInt(p.ID, 10),
			p.Date,
			p.Name,
			p.IDCardNumber,
			p.Destination,
			p.Phone,
			query.FormatAmount(p.Amount),
			p.PickupLocation,
			siNo(p.Paid),
			siNo(p.Traveled),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
