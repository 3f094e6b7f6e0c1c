package records

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mmynk/pasajeros/internal/models"
	"github.com/mmynk/pasajeros/internal/storage"
	"github.com/mmynk/pasajeros/internal/storage/memory"
)

func TestGetLocations_Fallback(t *testing.T) {
	ctx := context.Background()

	for _, stored := range []string{`{"destinations":`, `null`, `{"pickupPoints":{}}`, `[]`} {
		t.Run(stored, func(t *testing.T) {
			kv := memory.New()
			kv.Set(ctx, storage.KeyLocations, stored)

			got := New(kv).GetLocations(ctx)
			if diff := cmp.Diff(models.DefaultLocations(), got); diff != "" {
				t.Errorf("expected defaults (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetLocations_ToleratesOrphanedKeys(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	kv.Set(ctx, storage.KeyLocations, `{"destinations":["A"],"pickupPoints":{"B":["x"]}}`)

	got := New(kv).GetLocations(ctx)
	want := models.Locations{
		Destinations: []string{"A"},
		PickupPoints: map[string][]string{"B": {"x"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("locations mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLocations(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	saved, err := store.SaveLocations(ctx, models.Locations{
		Destinations: []string{" Bayamo - Habana ", "Bayamo - Habana", "", "Habana - Bayamo"},
		PickupPoints: map[string][]string{"Bayamo - Habana": {"Terminal"}},
	})
	if err != nil {
		t.Fatalf("SaveLocations failed: %v", err)
	}

	want := models.Locations{
		Destinations: []string{"Bayamo - Habana", "Habana - Bayamo"},
		PickupPoints: map[string][]string{"Bayamo - Habana": {"Terminal"}},
	}
	if diff := cmp.Diff(want, saved); diff != "" {
		t.Errorf("saved mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, store.GetLocations(ctx)); diff != "" {
		t.Errorf("stored mismatch (-want +got):\n%s", diff)
	}
}

func TestDestinationEditing(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	t.Run("add trims and creates empty pickup list", func(t *testing.T) {
		l, ok := store.AddDestination(ctx, "  Manzanillo - Bayamo ")
		if !ok {
			t.Fatal("AddDestination returned false")
		}
		last := l.Destinations[len(l.Destinations)-1]
		if last != "Manzanillo - Bayamo" {
			t.Errorf("expected trimmed destination appended, got %q", last)
		}
		if points, ok := l.PickupPoints["Manzanillo - Bayamo"]; !ok || len(points) != 0 {
			t.Errorf("expected empty pickup list, got %v (present=%v)", points, ok)
		}
	})

	t.Run("add rejects duplicates and blanks", func(t *testing.T) {
		if _, ok := store.AddDestination(ctx, "Manzanillo - Bayamo"); ok {
			t.Error("duplicate accepted")
		}
		if _, ok := store.AddDestination(ctx, "   "); ok {
			t.Error("blank accepted")
		}
	})

	t.Run("pickup points", func(t *testing.T) {
		l, ok := store.AddPickupPoint(ctx, "Manzanillo - Bayamo", " Parque ")
		if !ok {
			t.Fatal("AddPickupPoint returned false")
		}
		if diff := cmp.Diff([]string{"Parque"}, l.PickupPoints["Manzanillo - Bayamo"]); diff != "" {
			t.Errorf("pickups mismatch (-want +got):\n%s", diff)
		}
		if _, ok := store.AddPickupPoint(ctx, "Manzanillo - Bayamo", "Parque"); ok {
			t.Error("duplicate pickup accepted")
		}
		if _, ok := store.AddPickupPoint(ctx, "Nowhere", "Parque"); ok {
			t.Error("pickup for unknown destination accepted")
		}

		l, ok = store.RemovePickupPoint(ctx, "Manzanillo - Bayamo", "Parque")
		if !ok || len(l.PickupPoints["Manzanillo - Bayamo"]) != 0 {
			t.Errorf("RemovePickupPoint: ok=%v points=%v", ok, l.PickupPoints["Manzanillo - Bayamo"])
		}
		if _, ok := store.RemovePickupPoint(ctx, "Manzanillo - Bayamo", "Parque"); ok {
			t.Error("removing a missing pickup should fail")
		}
	})

	t.Run("remove drops destination and its pickups but not records", func(t *testing.T) {
		p, _ := store.AddRecord(ctx, models.NewPassenger{
			Date: "2024-03-01", Name: "Eva", Amount: 100, Destination: "Manzanillo - Bayamo",
		})

		l, ok := store.RemoveDestination(ctx, "Manzanillo - Bayamo")
		if !ok {
			t.Fatal("RemoveDestination returned false")
		}
		if l.HasDestination("Manzanillo - Bayamo") {
			t.Error("destination still listed")
		}
		if _, ok := l.PickupPoints["Manzanillo - Bayamo"]; ok {
			t.Error("pickup list not removed")
		}
		if got := store.ListRecords(ctx)[0]; got.ID != p.ID || got.Destination != "Manzanillo - Bayamo" {
			t.Errorf("record destination rewritten: %+v", got)
		}
		if _, ok := store.RemoveDestination(ctx, "Manzanillo - Bayamo"); ok {
			t.Error("second removal should fail")
		}
	})
}

func TestSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		store, _ := newTestStore(t)
		if err := store.SaveSettings(ctx, models.Settings{Theme: models.ThemeDark}); err != nil {
			t.Fatalf("SaveSettings failed: %v", err)
		}
		if got := store.GetSettings(ctx); got.Theme != models.ThemeDark {
			t.Errorf("expected dark, got %s", got.Theme)
		}
	})

	t.Run("rejects unknown theme", func(t *testing.T) {
		store, _ := newTestStore(t)
		if err := store.SaveSettings(ctx, models.Settings{Theme: "sepia"}); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("malformed falls back", func(t *testing.T) {
		for _, stored := range []string{`{"theme":`, `{"theme":"sepia"}`, `null`} {
			kv := memory.New()
			kv.Set(ctx, storage.KeySettings, stored)
			if got := New(kv).GetSettings(ctx); got != models.DefaultSettings() {
				t.Errorf("%s: expected defaults, got %+v", stored, got)
			}
		}
	})
}
