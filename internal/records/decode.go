package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mmynk/pasajeros/internal/models"
)

// decodePassengers parses a stored collection leniently. Entries written by
// older versions may lack a destination or carry non-boolean flags; those are
// filled with the fallback destination and false. Entries that are not
// objects, null included, are dropped one by one and the rest are kept.
func decodePassengers(raw string) ([]models.Passenger, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		return nil, errors.New("collection is null")
	}

	logs := make([]models.Passenger, 0, len(entries))
	for i, e := range entries {
		dec := json.NewDecoder(bytes.NewReader(e))
		dec.UseNumber()

		var m map[string]any
		if err := dec.Decode(&m); err != nil || m == nil {
			if !absentValue(e) {
				slog.Warn("Skipping stored passenger that is not an object", "index", i)
			}
			continue
		}
		logs = append(logs, passengerFromMap(m))
	}
	return logs, nil
}

func passengerFromMap(m map[string]any) models.Passenger {
	p := models.Passenger{
		ID:             asInt(m["id"]),
		Date:           asString(m["date"]),
		Name:           asString(m["name"]),
		Phone:          asString(m["phone"]),
		Amount:         asFloat(m["amount"]),
		PickupLocation: asString(m["pickupLocation"]),
		Destination:    asString(m["destination"]),
		IDCardNumber:   asString(m["idCardNumber"]),
	}
	if p.Destination == "" {
		p.Destination = models.FallbackDestination
	}
	p.Paid, _ = m["paid"].(bool)
	p.Traveled, _ = m["traveled"].(bool)
	return p
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case json.Number:
		f, _ := t.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f
	default:
		return 0
	}
}

func asInt(v any) int64 {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		f, _ := t.Float64()
		return int64(f)
	case string:
		n, _ := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return n
	default:
		return 0
	}
}

// decodeLocations parses stored location data. A document without a
// destinations list is malformed.
func decodeLocations(raw []byte) (models.Locations, error) {
	var stored struct {
		Destinations *[]string          `json:"destinations"`
		PickupPoints map[string][]string `json:"pickupPoints"`
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return models.Locations{}, err
	}
	if stored.Destinations == nil {
		return models.Locations{}, errors.New("destinations missing")
	}
	return normalizeLocations(models.Locations{
		Destinations: *stored.Destinations,
		PickupPoints: stored.PickupPoints,
	}), nil
}

// normalizeLocations trims names, drops empty and duplicate destinations and
// guarantees a non-nil pickup map.
func normalizeLocations(l models.Locations) models.Locations {
	out := models.Locations{
		Destinations: make([]string, 0, len(l.Destinations)),
		PickupPoints: make(map[string][]string, len(l.PickupPoints)),
	}
	seen := make(map[string]bool, len(l.Destinations))
	for _, d := range l.Destinations {
		d = strings.TrimSpace(d)
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out.Destinations = append(out.Destinations, d)
	}
	for dest, points := range l.PickupPoints {
		if points == nil {
			points = []string{}
		}
		out.PickupPoints[dest] = append([]string{}, points...)
	}
	return out
}

// decodeSettings parses stored settings. An unknown theme is malformed.
func decodeSettings(raw []byte) (models.Settings, error) {
	var settings models.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return models.Settings{}, err
	}
	if !settings.Theme.Valid() {
		return models.Settings{}, errors.New("unknown theme " + strconv.Quote(string(settings.Theme)))
	}
	return settings, nil
}

// absentValue reports whether a bundle field counts as absent:
// null, false, 0 or the empty string.
func absentValue(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}
