// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
)

// Keys of the three persisted entries.
const (
	KeyPassengers = "passengerLogs"
	KeyLocations  = "appLocations"
	KeySettings   = "appSettings"
)

// KV is a string key-value store, the persistence contract of the record store.
// This abstraction allows swapping storage backends (SQLite, MySQL, PostgreSQL,
// memory) without changing the record store.
type KV interface {
	// Get returns the value stored under key.
	// ok is false when the key has never been set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Close releases any resources held by the store.
	Close() error
}
