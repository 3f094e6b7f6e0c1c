package models

// FallbackDestination is assigned to stored records that lack a destination.
const FallbackDestination = "Manzanillo - Habana"

// Locations is the curated reference data offered when registering a passenger.
type Locations struct {
	// Destinations in display order. Duplicates are not allowed.
	Destinations []string `json:"destinations"`

	// PickupPoints maps a destination name to its ordered pickup points.
	// Keys without a matching destination are tolerated.
	PickupPoints map[string][]string `json:"pickupPoints"`
}

// HasDestination reports whether name is one of the known destinations.
func (l Locations) HasDestination(name string) bool {
	for _, d := range l.Destinations {
		if d == name {
			return true
		}
	}
	return false
}

// DefaultLocations returns the reference data seeded on first run.
func DefaultLocations() Locations {
	return Locations{
		Destinations: []string{"Manzanillo - Habana", "Habana - Manzanillo", "Manzanillo - Holguin"},
		PickupPoints: map[string][]string{
			"Habana - Manzanillo": {
				"100 y Boyeros", "Santa Catalina y Boyeros", "Ciudad deportiva",
				"Vía blanca y agua dulce", "Barrio obrero", "4ta y 8 vía",
				"Primer anillo", "Otro",
			},
			"Manzanillo - Habana": {
				"Vallespin", "Educación", "Parque bertot", "Caimari", "Casa del pru",
				"Terminal", "Mini terminal", "Novilla", "Esquina general Benítez",
				"Placita", "Pedro Soto", "Maceo", "Ondi", "Celia", "Plaza",
				"Cangrejo loco", "Cine popular", "Calzado", "Bertot", "Oro negro",
				"Cayo redondo", "Yara",
			},
			"Manzanillo - Holguin": {
				"Terminal", "Mini terminal", "Novilla", "Plaza", "Celia", "Otro",
			},
		},
	}
}
