// Package records is the record store: it owns the passenger collection, the
// location reference data and the settings, persisted as three JSON documents
// in a storage.KV.
//
// Every mutation is a read-modify-write of one whole document. Reads never
// fail: missing or malformed documents degrade to an empty collection or to
// the default aggregate. Writers in other processes are not arbitrated; the
// last write wins.
package records

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/pasajeros/internal/metrics"
	"github.com/mmynk/pasajeros/internal/models"
	"github.com/mmynk/pasajeros/internal/storage"
)

// Store is the record store. It is safe for concurrent use; mutations are
// serialized so each read-modify-write sees the previous one's result.
type Store struct {
	kv      storage.KV
	now     func() time.Time
	metrics *metrics.Metrics

	mu     sync.Mutex
	lastID int64

	subsMu  sync.Mutex
	subs    map[int]chan Change
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for id assignment.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithMetrics records operation outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// New creates a Store on top of kv. Call Initialize before first use.
func New(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:   kv,
		now:  time.Now,
		subs: make(map[int]chan Change),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize seeds every absent document with its default.
// Existing documents are left alone, so repeated calls are harmless.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	defaults := []struct {
		key   string
		value any
	}{
		{storage.KeyPassengers, []models.Passenger{}},
		{storage.KeyLocations, models.DefaultLocations()},
		{storage.KeySettings, models.DefaultSettings()},
	}
	for _, d := range defaults {
		_, ok, err := s.kv.Get(ctx, d.key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", d.key, err)
		}
		if ok {
			continue
		}
		if err := s.setJSON(ctx, d.key, d.value); err != nil {
			return err
		}
		slog.Info("Seeded default document", "key", d.key)
	}
	return nil
}

// ListRecords returns the stored collection, newest first.
// It returns an empty slice when the collection is missing or unreadable.
func (s *Store) ListRecords(ctx context.Context) []models.Passenger {
	logs, err := s.loadPassengers(ctx)
	if err != nil {
		slog.Warn("ListRecords: storage read failed", "error", err)
		s.recovered(storage.KeyPassengers)
		return []models.Passenger{}
	}
	return logs
}

// AddRecord assigns a fresh id to p, stores it in front of the collection and
// returns the stored record.
func (s *Store) AddRecord(ctx context.Context, p models.NewPassenger) (models.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs, err := s.loadPassengers(ctx)
	if err != nil {
		s.observe("add", "error")
		return models.Passenger{}, fmt.Errorf("failed to load passengers: %w", err)
	}

	stored := p.WithID(s.nextID(logs))
	logs = append([]models.Passenger{stored}, logs...)
	if err := s.setJSON(ctx, storage.KeyPassengers, logs); err != nil {
		s.observe("add", "error")
		return models.Passenger{}, err
	}
	s.lastID = stored.ID

	s.observe("add", "ok")
	s.Notify(Change{Key: storage.KeyPassengers, Source: SourceLocal})
	return stored, nil
}

// UpdateRecord replaces the record with p.ID by p.
// It returns false when no record has that id.
func (s *Store) UpdateRecord(ctx context.Context, p models.Passenger) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.replace(ctx, "update", p.ID, func(models.Passenger) models.Passenger { return p })
	return ok
}

// ToggleTraveled flips the traveled flag of the record with the given id.
func (s *Store) ToggleTraveled(ctx context.Context, id int64) (models.Passenger, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replace(ctx, "toggle_traveled", id, func(p models.Passenger) models.Passenger {
		p.Traveled = !p.Traveled
		return p
	})
}

// TogglePaid flips the paid flag of the record with the given id.
func (s *Store) TogglePaid(ctx context.Context, id int64) (models.Passenger, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replace(ctx, "toggle_paid", id, func(p models.Passenger) models.Passenger {
		p.Paid = !p.Paid
		return p
	})
}

// DeleteRecord removes the record with the given id.
// It returns false when no record had that id.
func (s *Store) DeleteRecord(ctx context.Context, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs, err := s.loadPassengers(ctx)
	if err != nil {
		slog.Error("DeleteRecord: failed to load passengers", "record_id", id, "error", err)
		s.observe("delete", "error")
		return false
	}

	kept := logs[:0:0]
	for _, p := range logs {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(logs) {
		s.observe("delete", "not_found")
		return false
	}
	if err := s.setJSON(ctx, storage.KeyPassengers, kept); err != nil {
		slog.Error("DeleteRecord failed", "record_id", id, "error", err)
		s.observe("delete", "error")
		return false
	}

	s.observe("delete", "ok")
	s.Notify(Change{Key: storage.KeyPassengers, Source: SourceLocal})
	return true
}

// replace rewrites the record with the given id in place. Callers hold s.mu.
func (s *Store) replace(ctx context.Context, op string, id int64, fn func(models.Passenger) models.Passenger) (models.Passenger, bool) {
	logs, err := s.loadPassengers(ctx)
	if err != nil {
		slog.Error("Failed to load passengers", "op", op, "record_id", id, "error", err)
		s.observe(op, "error")
		return models.Passenger{}, false
	}

	index := -1
	for i, p := range logs {
		if p.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		s.observe(op, "not_found")
		return models.Passenger{}, false
	}

	updated := fn(logs[index])
	updated.ID = id
	logs[index] = updated
	if err := s.setJSON(ctx, storage.KeyPassengers, logs); err != nil {
		slog.Error("Failed to store passengers", "op", op, "record_id", id, "error", err)
		s.observe(op, "error")
		return models.Passenger{}, false
	}

	s.observe(op, "ok")
	s.Notify(Change{Key: storage.KeyPassengers, Source: SourceLocal})
	return updated, true
}

// nextID returns an id above every id in logs and every id handed out before.
// Ids start from the wall clock in milliseconds.
func (s *Store) nextID(logs []models.Passenger) int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	for _, p := range logs {
		if p.ID >= id {
			id = p.ID + 1
		}
	}
	return id
}

// loadPassengers reads the collection. Malformed JSON yields an empty
// collection; only backend failures are returned as errors.
func (s *Store) loadPassengers(ctx context.Context) ([]models.Passenger, error) {
	raw, ok, err := s.kv.Get(ctx, storage.KeyPassengers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Passenger{}, nil
	}
	logs, err := decodePassengers(raw)
	if err != nil {
		slog.Warn("Stored passengers are malformed, using empty collection", "error", err)
		s.recovered(storage.KeyPassengers)
		return []models.Passenger{}, nil
	}
	return logs, nil
}

func (s *Store) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) observe(op, outcome string) {
	if s.metrics != nil {
		s.metrics.StoreOps.WithLabelValues(op, outcome).Inc()
	}
}

func (s *Store) recovered(key string) {
	if s.metrics != nil {
		s.metrics.Recoveries.WithLabelValues(key).Inc()
	}
}
