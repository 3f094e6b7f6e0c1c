package service

import (
	"encoding/json"

	"github.com/mmynk/pasajeros/internal/calculator"
	"github.com/mmynk/pasajeros/internal/models"
	"github.com/mmynk/pasajeros/internal/query"
)

// Empty is the request or response of calls that carry no data.
type Empty struct{}

// PassengerService messages

type ListPassengersRequest struct {
	// Search is the free-text search term.
	Search  string        `json:"search"`
	Filters query.Filters `json:"filters"`
}

type ListPassengersResponse struct {
	Passengers []models.Passenger `json:"passengers"`
	Totals     calculator.Totals  `json:"totals"`
	// Stored is the size of the unfiltered collection.
	Stored int `json:"stored"`
}

type AddPassengerRequest struct {
	Passenger models.NewPassenger `json:"passenger"`
}

type PassengerResponse struct {
	Passenger models.Passenger `json:"passenger"`
}

type UpdatePassengerRequest struct {
	Passenger models.Passenger `json:"passenger"`
}

type PassengerIDRequest struct {
	ID int64 `json:"id"`
}

type ExportPassengersRequest struct {
	Format  string        `json:"format"`
	Search  string        `json:"search"`
	Filters query.Filters `json:"filters"`
}

type ExportPassengersResponse struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// SettingsService messages

type LocationsResponse struct {
	Locations models.Locations `json:"locations"`
}

type SaveLocationsRequest struct {
	Locations models.Locations `json:"locations"`
}

type DestinationRequest struct {
	Name string `json:"name"`
}

type PickupPointRequest struct {
	Destination string `json:"destination"`
	Point       string `json:"point"`
}

type SettingsMessage struct {
	Settings models.Settings `json:"settings"`
}

type BackupMessage struct {
	FileName string          `json:"fileName,omitempty"`
	Bundle   json.RawMessage `json:"bundle"`
}
