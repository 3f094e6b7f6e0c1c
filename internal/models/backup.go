package models

// BackupVersion tags every exported bundle.
const BackupVersion = "1.0.0"

// BackupBundle is a full snapshot of the persisted state.
//
// On import every aggregate is optional: a nil field leaves the stored
// aggregate untouched.
type BackupBundle struct {
	Logs      []Passenger `json:"logs"`
	Locations *Locations  `json:"locations"`
	Settings  *Settings   `json:"settings"`
	Version   string      `json:"version"`
}
