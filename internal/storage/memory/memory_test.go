package memory

import (
	"context"
	"testing"

	"github.com/mmynk/pasajeros/internal/storage"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, ok, err := s.Get(ctx, storage.KeySettings); ok || err != nil {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, storage.KeySettings, ""); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := s.Get(ctx, storage.KeySettings)
	if err != nil || !ok || value != "" {
		t.Errorf("expected stored empty string, got %q ok=%v err=%v", value, ok, err)
	}
}
