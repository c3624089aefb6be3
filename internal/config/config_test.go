// internal/config/config_test.go

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("WEATHER_API_BASE", "")
	t.Setenv("WEATHER_FORECAST_DAYS", "")

	c := Load()
	if c.AppPort != "8080" || c.Addr() != ":8080" {
		t.Fatalf("unexpected port: %q / %q", c.AppPort, c.Addr())
	}
	if c.Weather.BaseURL != "https://api.open-meteo.com" {
		t.Fatalf("unexpected base url: %q", c.Weather.BaseURL)
	}
	if c.Weather.Days != 5 {
		t.Fatalf("expected 5 days default, got %d", c.Weather.Days)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("API_KEY", "secret")
	t.Setenv("WEATHER_TIMEOUT_SEC", "3")
	t.Setenv("WEATHER_DEFAULT_LAT", "-6.2")
	t.Setenv("WEATHER_DEFAULT_LON", "106.8")
	t.Setenv("WEATHER_DEFAULT_LOCATION", "Jakarta")
	t.Setenv("WEATHER_FORECAST_DAYS", "7")

	c := Load()
	if c.AppPort != "9090" || c.APIKey != "secret" {
		t.Fatalf("unexpected app config: %+v", c)
	}
	if c.Weather.Timeout != 3*time.Second {
		t.Fatalf("timeout = %v", c.Weather.Timeout)
	}
	if c.Weather.DefaultLat != -6.2 || c.Weather.DefaultLon != 106.8 || c.Weather.DefaultLocation != "Jakarta" {
		t.Fatalf("unexpected defaults: %+v", c.Weather)
	}
	if c.Weather.Days != 7 {
		t.Fatalf("days = %d", c.Weather.Days)
	}
}

func TestLoadClampsInvalidDays(t *testing.T) {
	t.Setenv("WEATHER_FORECAST_DAYS", "40")
	if got := Load().Weather.Days; got != 5 {
		t.Fatalf("expected fallback to 5, got %d", got)
	}

	t.Setenv("WEATHER_FORECAST_DAYS", "abc")
	if got := Load().Weather.Days; got != 5 {
		t.Fatalf("expected default for non-integer, got %d", got)
	}
}
