package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/pasajeros/internal/config"
	"github.com/mmynk/pasajeros/internal/metrics"
	"github.com/mmynk/pasajeros/internal/records"
	"github.com/mmynk/pasajeros/internal/storage"
	"github.com/mmynk/pasajeros/internal/storage/memory"
	"github.com/mmynk/pasajeros/internal/storage/mysql"
	"github.com/mmynk/pasajeros/internal/storage/postgres"
	"github.com/mmynk/pasajeros/internal/storage/sqlite"
)

// openKV connects to the configured backend.
func openKV(ctx context.Context, sc config.StorageConfig) (storage.KV, error) {
	switch sc.Backend {
	case config.BackendSQLite:
		return sqlite.New(sc.Path)
	case config.BackendMySQL:
		return mysql.New(ctx, sc.MySQLDSN)
	case config.BackendPostgres:
		return postgres.New(ctx, sc.PostgresDSN)
	case config.BackendMemory:
		slog.Warn("Using in-memory storage, data is lost on exit")
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", sc.Backend)
}

// openStore opens the backend and an initialized record store on top of it.
// The caller closes the returned KV.
func openStore(ctx context.Context, m *metrics.Metrics) (*records.Store, storage.KV, error) {
	kv, err := openKV(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	var opts []records.Option
	if m != nil {
		opts = append(opts, records.WithMetrics(m))
	}
	store := records.New(kv, opts...)
	if err := store.Initialize(ctx); err != nil {
		kv.Close()
		return nil, nil, err
	}
	return store, kv, nil
}

// watchedFile returns the database file behind kv when it is a local file
// that other processes may write.
func watchedFile(kv storage.KV) (string, bool) {
	if s, ok := kv.(*sqlite.SQLiteStore); ok {
		return s.Path(), true
	}
	return "", false
}
