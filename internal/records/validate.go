package records

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mmynk/pasajeros/internal/models"
)

// ErrValidation is wrapped by every ValidationError.
var ErrValidation = errors.New("invalid input")

// DateLayout is the layout of Passenger.Date.
const DateLayout = "2006-01-02"

// ValidationError reports the first rejected field of a passenger.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ValidateNew checks a passenger about to be registered. The destination
// must be one of locations' destinations.
func ValidateNew(p models.NewPassenger, locations models.Locations) error {
	if err := validateFields(p.Name, p.Date, p.Amount, p.Destination, p.IDCardNumber); err != nil {
		return err
	}
	if !locations.HasDestination(p.Destination) {
		return &ValidationError{Field: "destination", Message: fmt.Sprintf("unknown destination %q", p.Destination)}
	}
	return nil
}

// Validate checks an edited passenger. The destination is not checked
// against the current location data.
func Validate(p models.Passenger) error {
	if p.ID == 0 {
		return &ValidationError{Field: "id", Message: "required"}
	}
	return validateFields(p.Name, p.Date, p.Amount, p.Destination, p.IDCardNumber)
}

func validateFields(name, date string, amount float64, destination, idCard string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "required"}
	}
	if amount <= 0 {
		return &ValidationError{Field: "amount", Message: "must be greater than zero"}
	}
	if destination == "" {
		return &ValidationError{Field: "destination", Message: "required"}
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return &ValidationError{Field: "date", Message: "must be YYYY-MM-DD"}
	}
	for _, r := range idCard {
		if r < '0' || r > '9' {
			return &ValidationError{Field: "idCardNumber", Message: "must contain digits only"}
		}
	}
	return nil
}
