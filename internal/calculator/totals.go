package calculator

import (
	"github.com/mmynk/pasajeros/internal/models"
)

// DestinationTotals summarizes the records of one destination.
type DestinationTotals struct {
	Destination string  `json:"destination"`
	Passengers  int     `json:"passengers"`
	Amount      float64 `json:"amount"`
	Collected   float64 `json:"collected"`
	Outstanding float64 `json:"outstanding"`
}

// Totals summarizes a view of the passenger collection.
type Totals struct {
	Passengers int     `json:"passengers"`
	Paid       int     `json:"paid"`
	Traveled   int     `json:"traveled"`
	Amount     float64 `json:"amount"`
	// Collected is the amount of paid records.
	Collected float64 `json:"collected"`
	// Outstanding is the amount of unpaid records.
	Outstanding float64 `json:"outstanding"`

	// ByDestination lists destinations in order of first appearance.
	ByDestination []DestinationTotals `json:"byDestination"`
}

// Summarize computes Totals over records.
// Amounts are summed in whole cents.
func Summarize(records []models.Passenger) Totals {
	totals := Totals{ByDestination: []DestinationTotals{}}
	index := make(map[string]int)

	var amount, collected int64
	perDest := make(map[string]*[2]int64) // amount, collected

	for _, p := range records {
		cents := toCents(p.Amount)

		totals.Passengers++
		amount += cents
		if p.Paid {
			totals.Paid++
			collected += cents
		}
		if p.Traveled {
			totals.Traveled++
		}

		i, ok := index[p.Destination]
		if !ok {
			i = len(totals.ByDestination)
			index[p.Destination] = i
			totals.ByDestination = append(totals.ByDestination, DestinationTotals{Destination: p.Destination})
			perDest[p.Destination] = &[2]int64{}
		}
		totals.ByDestination[i].Passengers++
		sums := perDest[p.Destination]
		sums[0] += cents
		if p.Paid {
			sums[1] += cents
		}
	}

	totals.Amount = fromCents(amount)
	totals.Collected = fromCents(collected)
	totals.Outstanding = fromCents(amount - collected)
	for i := range totals.ByDestination {
		d := &totals.ByDestination[i]
		sums := perDest[d.Destination]
		d.Amount = fromCents(sums[0])
		d.Collected = fromCents(sums[1])
		d.Outstanding = fromCents(sums[0] - sums[1])
	}
	return totals
}
