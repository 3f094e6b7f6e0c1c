// Package models defines the core domain models for pasajeros.
//
// # Aggregates
//
// Three aggregates are persisted, each under its own storage key:
//   - Passenger: one passenger's trip and payment entry (the records collection)
//   - Locations: curated destinations and their pickup points
//   - Settings: UI preferences (currently only the theme)
//
// BackupBundle combines all three for a full export and restore.
//
// # Design Principles
//
// 1. **Persisted names are the wire names**: JSON tags match the stored
// documents so existing data and backups keep loading
// 2. **Whole aggregates**: Locations and Settings are always replaced as a
// unit, never patched field by field
// 3. **Plain values**: no pointers between aggregates; a record refers to
// its destination by name only
package models
