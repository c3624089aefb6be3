// internal/app/routes_test.go

package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apppkg "weather-dashboard/internal/app"
	"weather-dashboard/internal/config"
	"weather-dashboard/internal/util"
	"weather-dashboard/pkg/weather"
)

type fakeProvider struct{}

func (fakeProvider) GetForecast(_ context.Context, q weather.Query) (weather.Forecast, error) {
	return weather.Forecast{
		Location: q.Location,
		Current:  weather.Current{Time: "2025-07-24T15:00", TempC: 30, Condition: "Clear sky"},
		Daily:    []weather.Day{{Date: "2025-07-24", MaxC: 30, MinC: 20, Condition: "Clear sky"}},
	}, nil
}

func newApp(t *testing.T, apiKey string) *apppkg.App {
	t.Helper()
	cfg := &config.Config{AppName: "weather-dashboard", APIKey: apiKey}
	cfg.Weather.DefaultLat = 52.52
	cfg.Weather.DefaultLon = 13.41
	cfg.Weather.DefaultLocation = "Berlin"
	cfg.Weather.Days = 5
	return apppkg.New(cfg, apppkg.Options{
		Provider: fakeProvider{},
		Clock:    util.FixedClock{T: time.Date(2025, time.July, 24, 12, 0, 0, 0, time.UTC)},
		Version:  "test",
	})
}

func serve(a *apppkg.App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

// Sanity check: public endpoints tetap 200
func TestPublicRoutesHealthy(t *testing.T) {
	a := newApp(t, "")
	for _, path := range []string{"/", "/healthz", "/readyz", "/metrics", "/api/healthz"} {
		rec := serve(a, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 on %s, got %d", path, rec.Code)
		}
		if rec.Header().Get("X-Request-ID") == "" {
			t.Fatalf("missing X-Request-ID on %s", path)
		}
	}
}

func TestAPIWeatherThroughRouter(t *testing.T) {
	a := newApp(t, "")
	rec := serve(a, httptest.NewRequest(http.MethodGet, "/api/weather", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"label":"Thu, Jul 24"`) {
		t.Fatalf("expected formatted label, got %s", rec.Body.String())
	}
}

func TestDateLabelThroughRouter(t *testing.T) {
	a := newApp(t, "")
	rec := serve(a, httptest.NewRequest(http.MethodGet, "/api/date-label?date=2025-07-01T00:00:00Z", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Tue, Jul 1") {
		t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
}

// Pastikan /api/* diproteksi jika API_KEY diset
func TestAPIRoutesProtected(t *testing.T) {
	a := newApp(t, "s3cret")

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/api/weather", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/weather", nil)
	req.Header.Set("X-API-Key", "s3cret")
	if rec := serve(a, req); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with key, got %d", rec.Code)
	}

	// halaman dashboard tetap publik
	if rec := serve(a, httptest.NewRequest(http.MethodGet, "/", nil)); rec.Code != http.StatusOK {
		t.Fatalf("expected dashboard to stay public, got %d", rec.Code)
	}
}

func TestPreflight(t *testing.T) {
	a := newApp(t, "s3cret")
	rec := serve(a, httptest.NewRequest(http.MethodOptions, "/api/weather", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing CORS header")
	}
}

// Run berhenti bersih saat context dibatalkan
func TestRunShutsDownOnCancel(t *testing.T) {
	a := newApp(t, "")
	a.Config.AppPort = "0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

// Port yang tidak valid harus dikembalikan sebagai error, bukan log.Fatal
func TestRunReturnsListenError(t *testing.T) {
	a := newApp(t, "")
	a.Config.AppPort = "not-a-port"

	if err := a.Run(context.Background()); err == nil {
		t.Fatalf("expected listen error for invalid port")
	}
}
