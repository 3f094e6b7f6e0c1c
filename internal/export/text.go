package export

import (
	"fmt"
	"strings"

	"github.com/mmynk/pasajeros/internal/models"
)

const divider = "--------------------"

// DetailedText renders one labelled block per record, framed by divider lines.
func DetailedText(records []models.Passenger) string {
	blocks := make([]string, 0, len(records))
	for _, p := range records {
		lines := []string{
			divider,
			"👤 *Nombre:* " + p.Name,
			"✅ *Pagado:* " + siNoAccent(p.Paid),
			"🚌 *Viajó:* " + siNoAccent(p.Traveled),
			"➡️ *Destino:* " + p.Destination,
		}
		if p.IDCardNumber != "" {
			lines = append(lines, "🆔 *Carnet:* "+p.IDCardNumber)
		}
		if p.Phone != "" {
			lines = append(lines, "📞 *Teléfono:* "+p.Phone)
		}
		if p.PickupLocation != "" {
			lines = append(lines, "📍 *Lugar Recogida:* "+p.PickupLocation)
		}
		lines = append(lines,
			fmt.Sprintf("💵 *Importe:* %.2f CUP", p.Amount),
			divider,
		)
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n")
}

// Summary renders one line per record: name, id card when known, pickup
// location and payment state. Meant to be pasted into a chat.
func Summary(records []models.Passenger) string {
	lines := make([]string, 0, len(records))
	for _, p := range records {
		card := "- "
		if p.IDCardNumber != "" {
			card = "💳 " + p.IDCardNumber + " - "
		}
		paid := "No Pagado"
		if p.Paid {
			paid = "Pagado"
		}
		lines = append(lines, fmt.Sprintf("👤 %s %s📍 %s - %s ", p.Name, card, p.PickupLocation, paid))
	}
	return strings.Join(lines, "\n")
}

func siNoAccent(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
