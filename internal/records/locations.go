package records

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mmynk/pasajeros/internal/models"
	"github.com/mmynk/pasajeros/internal/storage"
)

// GetLocations returns the stored location data, or the defaults when it is
// missing or malformed.
func (s *Store) GetLocations(ctx context.Context) models.Locations {
	raw, ok, err := s.kv.Get(ctx, storage.KeyLocations)
	if err != nil {
		slog.Warn("GetLocations: storage read failed, using defaults", "error", err)
		s.recovered(storage.KeyLocations)
		return models.DefaultLocations()
	}
	if !ok {
		return models.DefaultLocations()
	}
	locations, err := decodeLocations([]byte(raw))
	if err != nil {
		slog.Warn("Stored locations are malformed, using defaults", "error", err)
		s.recovered(storage.KeyLocations)
		return models.DefaultLocations()
	}
	return locations
}

// SaveLocations replaces the whole location document.
// Destination names are trimmed and de-duplicated, keeping the first occurrence.
func (s *Store) SaveLocations(ctx context.Context, l models.Locations) (models.Locations, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveLocations(ctx, "save_locations", normalizeLocations(l))
}

// AddDestination appends a destination with an empty pickup list.
// It returns false when the trimmed name is empty or already present.
func (s *Store) AddDestination(ctx context.Context, name string) (models.Locations, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	l := s.GetLocations(ctx)
	if name == "" || l.HasDestination(name) {
		s.observe("add_destination", "rejected")
		return l, false
	}

	l.Destinations = append(l.Destinations, name)
	l.PickupPoints[name] = []string{}
	return s.saveOrKeep(ctx, "add_destination", l)
}

// RemoveDestination drops a destination together with its pickup points.
// Stored records keep their destination name.
func (s *Store) RemoveDestination(ctx context.Context, name string) (models.Locations, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.GetLocations(ctx)
	if !l.HasDestination(name) {
		s.observe("remove_destination", "not_found")
		return l, false
	}

	kept := make([]string, 0, len(l.Destinations)-1)
	for _, d := range l.Destinations {
		if d != name {
			kept = append(kept, d)
		}
	}
	l.Destinations = kept
	delete(l.PickupPoints, name)
	return s.saveOrKeep(ctx, "remove_destination", l)
}

// AddPickupPoint appends a pickup point to destination's list.
// It returns false for an unknown destination, an empty name or a duplicate.
func (s *Store) AddPickupPoint(ctx context.Context, destination, point string) (models.Locations, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	point = strings.TrimSpace(point)
	l := s.GetLocations(ctx)
	if point == "" || !l.HasDestination(destination) {
		s.observe("add_pickup", "rejected")
		return l, false
	}
	for _, p := range l.PickupPoints[destination] {
		if p == point {
			s.observe("add_pickup", "rejected")
			return l, false
		}
	}

	l.PickupPoints[destination] = append(l.PickupPoints[destination], point)
	return s.saveOrKeep(ctx, "add_pickup", l)
}

// RemovePickupPoint removes point from destination's list.
func (s *Store) RemovePickupPoint(ctx context.Context, destination, point string) (models.Locations, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.GetLocations(ctx)
	points := l.PickupPoints[destination]
	kept := make([]string, 0, len(points))
	for _, p := range points {
		if p != point {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(points) {
		s.observe("remove_pickup", "not_found")
		return l, false
	}

	l.PickupPoints[destination] = kept
	return s.saveOrKeep(ctx, "remove_pickup", l)
}

// saveOrKeep stores l, or returns the unchanged document when the write fails.
func (s *Store) saveOrKeep(ctx context.Context, op string, l models.Locations) (models.Locations, bool) {
	saved, err := s.saveLocations(ctx, op, l)
	if err != nil {
		slog.Error("Failed to store locations", "op", op, "error", err)
		return s.GetLocations(ctx), false
	}
	return saved, true
}

func (s *Store) saveLocations(ctx context.Context, op string, l models.Locations) (models.Locations, error) {
	if err := s.setJSON(ctx, storage.KeyLocations, l); err != nil {
		s.observe(op, "error")
		return models.Locations{}, err
	}
	s.observe(op, "ok")
	s.Notify(Change{Key: storage.KeyLocations, Source: SourceLocal})
	return l, nil
}
