package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"

	"delstarford/internal/config"
	"delstarford/internal/store"
)

func newDashboardApp(st store.Store) *fiber.App {
	cfg := &config.Config{DemoUserID: "user_123"}
	handler := NewDashboardHandler(cfg, st)

	app := fiber.New()
	app.Get("/dashboard-data", handler.Data)
	app.Get("/admin/simulate-update", handler.SimulateUpdate)
	app.Get("/health", NewHealthHandler(st).Check)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, []byte) {
	t.Helper()

	req, _ := http.NewRequest("GET", path, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body
}

func TestDashboardDataEmpty(t *testing.T) {
	app := newDashboardApp(store.NewMemory())

	status, body := get(t, app, "/dashboard-data")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if string(body) != "null" {
		t.Errorf("body = %q, want null when nothing is stored", body)
	}
}

func TestSimulateUpdateThenDashboardData(t *testing.T) {
	app := newDashboardApp(store.NewMemory())

	status, body := get(t, app, "/admin/simulate-update")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if string(body) != "Admin update simulated successfully!" {
		t.Errorf("body = %q, want the plain-text confirmation", body)
	}

	status, body = get(t, app, "/dashboard-data")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		t.Fatalf("dashboard data is not JSON: %v (%s)", err, body)
	}
	if data["status"] != "Genetic Analysis Completed" {
		t.Errorf("status field = %v, want the simulated project status", data["status"])
	}
	if data["last_updated"] == nil {
		t.Error("last_updated field missing")
	}
}

func TestSimulateUpdateIsRepeatable(t *testing.T) {
	st := store.NewMemory()
	app := newDashboardApp(st)

	before := st.Len()
	get(t, app, "/admin/simulate-update")
	get(t, app, "/admin/simulate-update")

	// One project document plus one activity entry per call.
	if st.Len() != before+3 {
		t.Errorf("stored documents = %d, want %d", st.Len(), before+3)
	}
}

func TestHealth(t *testing.T) {
	app := newDashboardApp(store.NewMemory())

	status, body := get(t, app, "/health")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var health map[string]string
	if err := json.Unmarshal(body, &health); err != nil {
		t.Fatalf("health response is not JSON: %v", err)
	}
	if health["status"] != "ok" {
		t.Errorf("status = %q, want ok", health["status"])
	}
}
