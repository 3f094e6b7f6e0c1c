package main

import (
	"path/filepath"
	"testing"

	"github.com/mmynk/pasajeros/internal/storage/memory"
	"github.com/mmynk/pasajeros/internal/storage/sqlite"
)

func TestWatchedFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pasajeros.db")
	kv, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer kv.Close()

	path, ok := watchedFile(kv)
	if !ok {
		t.Fatal("expected the sqlite file to be watched")
	}
	if path != dbPath {
		t.Errorf("expected %s, got %s", dbPath, path)
	}

	if _, ok := watchedFile(memory.New()); ok {
		t.Error("memory storage has no file to watch")
	}
}
