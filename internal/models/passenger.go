package models

// Passenger is one passenger's trip and payment entry.
type Passenger struct {
	// ID is unique and increases with every insert.
	// New ids are at least the creation time in Unix milliseconds.
	ID int64 `json:"id"`

	// Date is the trip date, formatted as YYYY-MM-DD.
	Date string `json:"date"`

	// Name is the passenger's name. Never empty for entries created through the API.
	Name string `json:"name"`

	// Phone is an optional contact number.
	Phone string `json:"phone,omitempty"`

	// Amount is the fare in CUP.
	Amount float64 `json:"amount"`

	// PickupLocation is free-form or one of the destination's pickup points.
	PickupLocation string `json:"pickupLocation,omitempty"`

	// Destination names an entry of Locations.Destinations at the time the
	// record was created. It is not re-validated afterwards.
	Destination string `json:"destination"`

	Paid     bool `json:"paid"`
	Traveled bool `json:"traveled"`

	// IDCardNumber is the optional identity card number (digits).
	IDCardNumber string `json:"idCardNumber,omitempty"`
}

// NewPassenger is a Passenger that has not been stored yet.
type NewPassenger struct {
	Date           string  `json:"date"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone,omitempty"`
	Amount         float64 `json:"amount"`
	PickupLocation string  `json:"pickupLocation,omitempty"`
	Destination    string  `json:"destination"`
	Paid           bool    `json:"paid"`
	Traveled       bool    `json:"traveled"`
	IDCardNumber   string  `json:"idCardNumber,omitempty"`
}

// WithID returns the stored form of p under the given id.
func (p NewPassenger) WithID(id int64) Passenger {
	return Passenger{
		ID:             id,
		Date:           p.Date,
		Name:           p.Name,
		Phone:          p.Phone,
		Amount:         p.Amount,
		PickupLocation: p.PickupLocation,
		Destination:    p.Destination,
		Paid:           p.Paid,
		Traveled:       p.Traveled,
		IDCardNumber:   p.IDCardNumber,
	}
}
