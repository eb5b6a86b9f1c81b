package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/delivery-quote/internal/core/domain"
	"github.com/99minutos/delivery-quote/internal/core/ports"
)

type stubAdminService struct {
	settings domain.GlobalSettings
	catalog  domain.ZoneCatalog
	statuses []ports.CacheStatus
}

func (s *stubAdminService) Settings(context.Context) domain.GlobalSettings { return s.settings }
func (s *stubAdminService) Catalog(context.Context) domain.ZoneCatalog { return s.catalog }
func (s *stubAdminService) Refresh(context.Context) []ports.CacheStatus { return s.statuses }

func serveAdmin(t *testing.T, method string, fn func(c echo.Context) error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	if err := fn(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	return rec
}

func TestAdminHandler_Settings(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{settings: domain.DefaultSettings()})

	rec := serveAdmin(t, http.MethodGet, h.Settings)

	var resp domain.GlobalSettings
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.BaseFeeNgn != 500 || resp.PlatformCommissionPercent != 15 {
		t.Errorf("unexpected settings: %+v", resp)
	}
}

func TestAdminHandler_Zones_EmptyCatalog(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{})

	rec := serveAdmin(t, http.MethodGet, h.Zones)

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if zones, ok := resp["city_zones"].([]any); !ok || len(zones) != 0 {
		t.Errorf("expected empty city_zones array, got %v", resp["city_zones"])
	}
}

func TestAdminHandler_RefreshCaches(t *testing.T) {
	exp := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	h := NewAdminHandler(&stubAdminService{statuses: []ports.CacheStatus{
		{Name: "settings", ExpiresAt: exp},
		{Name: "zones", ExpiresAt: exp, Error: errors.New("mongo down").Error()},
	}})

	rec := serveAdmin(t, http.MethodPost, h.RefreshCaches)

	var resp refreshResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Caches) != 2 || resp.Caches[1].Error != "mongo down" {
		t.Errorf("unexpected caches: %+v", resp.Caches)
	}
}

// ---- Health ----

func TestReadiness(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     []DependencyCheck
		wantCode   int
		wantStatus string
	}{
		{"all up", []DependencyCheck{{"mongodb", ok}, {"redis", ok}}, http.StatusOK, "ok"},
		{"redis down", []DependencyCheck{{"mongodb", ok}, {"redis", down}}, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)

			if err := NewReadinessHandler(tt.checks...).Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Status != tt.wantStatus || len(resp.Dependencies) != len(tt.checks) {
				t.Errorf("unexpected response: %+v", resp)
			}
		})
	}
}
