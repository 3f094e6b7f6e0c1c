package records

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/pasajeros/internal/models"
	"github.com/mmynk/pasajeros/internal/storage"
)

// GetSettings returns the stored settings, or the defaults when they are
// missing or malformed.
func (s *Store) GetSettings(ctx context.Context) models.Settings {
	raw, ok, err := s.kv.Get(ctx, storage.KeySettings)
	if err != nil {
		slog.Warn("GetSettings: storage read failed, using defaults", "error", err)
		s.recovered(storage.KeySettings)
		return models.DefaultSettings()
	}
	if !ok {
		return models.DefaultSettings()
	}
	settings, err := decodeSettings([]byte(raw))
	if err != nil {
		slog.Warn("Stored settings are malformed, using defaults", "error", err)
		s.recovered(storage.KeySettings)
		return models.DefaultSettings()
	}
	return settings
}

// SaveSettings replaces the settings document.
func (s *Store) SaveSettings(ctx context.Context, settings models.Settings) error {
	if !settings.Theme.Valid() {
		return fmt.Errorf("%w: unknown theme %q", ErrValidation, settings.Theme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.setJSON(ctx, storage.KeySettings, settings); err != nil {
		s.observe("save_settings", "error")
		return err
	}
	s.observe("save_settings", "ok")
	s.Notify(Change{Key: storage.KeySettings, Source: SourceLocal})
	return nil
}
