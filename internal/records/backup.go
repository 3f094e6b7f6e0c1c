package records

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mmynk/pasajeros/internal/models"
	"github.com/mmynk/pasajeros/internal/storage"
)

// ExportBundle serializes the records, locations and settings into an
// indented backup bundle.
func (s *Store) ExportBundle(ctx context.Context) ([]byte, error) {
	locations := s.GetLocations(ctx)
	settings := s.GetSettings(ctx)
	bundle := models.BackupBundle{
		Logs:      s.ListRecords(ctx),
		Locations: &locations,
		Settings:  &settings,
		Version:   models.BackupVersion,
	}
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, nil
}

// ImportBundle restores a backup produced by ExportBundle.
//
// The whole payload is parsed before anything is written; a parse failure
// returns false and leaves storage untouched. Aggregates missing from the
// bundle (absent, null, false, 0 or "") keep their stored value. The version
// tag is not checked.
func (s *Store) ImportBundle(ctx context.Context, data []byte) bool {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		slog.Warn("ImportBundle: payload is not a JSON object", "error", err)
		s.observe("import", "invalid")
		return false
	}

	type write struct {
		key   string
		value any
	}
	var writes []write

	if v, ok := raw["logs"]; ok && !absentValue(v) {
		logs, err := decodePassengers(string(v))
		if err != nil {
			slog.Warn("ImportBundle: logs are malformed", "error", err)
			s.observe("import", "invalid")
			return false
		}
		writes = append(writes, write{storage.KeyPassengers, logs})
	}
	if v, ok := raw["locations"]; ok && !absentValue(v) {
		locations, err := decodeLocations(v)
		if err != nil {
			slog.Warn("ImportBundle: locations are malformed", "error", err)
			s.observe("import", "invalid")
			return false
		}
		writes = append(writes, write{storage.KeyLocations, locations})
	}
	if v, ok := raw["settings"]; ok && !absentValue(v) {
		settings, err := decodeSettings(v)
		if err != nil {
			slog.Warn("ImportBundle: settings are malformed", "error", err)
			s.observe("import", "invalid")
			return false
		}
		writes = append(writes, write{storage.KeySettings, settings})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range writes {
		if err := s.setJSON(ctx, w.key, w.value); err != nil {
			slog.Error("ImportBundle: write failed", "key", w.key, "error", err)
			s.observe("import", "error")
			return false
		}
		s.Notify(Change{Key: w.key, Source: SourceLocal})
	}

	slog.Info("Backup imported", "aggregates", len(writes))
	s.observe("import", "ok")
	return true
}
