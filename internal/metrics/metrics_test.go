package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandler(t *testing.T) {
	m := New()
	m.StoreOps.WithLabelValues("add", "ok").Inc()
	m.Recoveries.WithLabelValues("passengerLogs").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		`pasajeros_store_operations_total{op="add",outcome="ok"} 1`,
		`pasajeros_store_recoveries_total{key="passengerLogs"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestNew_IndependentRegistries(t *testing.T) {
	// Registering twice on the default registry would panic.
	a, b := New(), New()
	if a.Registry() == b.Registry() {
		t.Error("expected separate registries")
	}
}
