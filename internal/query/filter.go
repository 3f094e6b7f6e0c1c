// Package query derives the filtered view of the passenger collection shown
// to the user. Everything here is pure: no storage access, no side effects.
package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmynk/pasajeros/internal/models"
)

// PaidStatus selects records by payment state.
type PaidStatus string

const (
	PaidAll    PaidStatus = "all"
	PaidOnly   PaidStatus = "paid"
	UnpaidOnly PaidStatus = "unpaid"
)

// ParsePaidStatus accepts "all", "paid" or "unpaid". Empty means "all".
func ParsePaidStatus(s string) (PaidStatus, error) {
	switch PaidStatus(strings.ToLower(strings.TrimSpace(s))) {
	case "", PaidAll:
		return PaidAll, nil
	case PaidOnly:
		return PaidOnly, nil
	case UnpaidOnly:
		return UnpaidOnly, nil
	}
	return "", fmt.Errorf("unknown paid status %q", s)
}

// Filters are the structured criteria. Empty fields match everything.
type Filters struct {
	// Name matches as a case-insensitive substring.
	Name string `json:"name"`
	// Date matches exactly (YYYY-MM-DD).
	Date string `json:"date"`
	// Destination matches exactly.
	Destination string `json:"destination"`
	// PaidStatus defaults to PaidAll when empty.
	PaidStatus PaidStatus `json:"paidStatus"`
}

// FilterRecords returns the records of all that pass every active filter and,
// when freeText is not blank, contain freeText (case-insensitively) in one of
// their searchable fields. The input order is kept.
func FilterRecords(all []models.Passenger, freeText string, f Filters) []models.Passenger {
	name := strings.ToLower(f.Name)
	term := strings.ToLower(strings.TrimSpace(freeText))

	out := make([]models.Passenger, 0, len(all))
	for _, p := range all {
		if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}
		if f.Date != "" && p.Date != f.Date {
			continue
		}
		if f.Destination != "" && p.Destination != f.Destination {
			continue
		}
		if !matchesPaid(p, f.PaidStatus) {
			continue
		}
		if term != "" && !matchesTerm(p, term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesPaid(p models.Passenger, status PaidStatus) bool {
	switch status {
	case PaidOnly:
		return p.Paid
	case UnpaidOnly:
		return !p.Paid
	default:
		return true
	}
}

// matchesTerm expects term already lower-cased. Optional fields only match
// when present.
func matchesTerm(p models.Passenger, term string) bool {
	fields := [...]string{
		p.Name,
		p.Date,
		p.Destination,
		p.PickupLocation,
		FormatAmount(p.Amount),
		p.Phone,
		p.IDCardNumber,
	}
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// FormatAmount renders an amount the way it is searched and exported:
// the shortest decimal form, without exponent ("500", "12.5").
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
