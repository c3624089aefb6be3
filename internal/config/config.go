// internal/config/config.go
// Loader konfigurasi dari environment variables

package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

type Config struct {
	AppName  string
	AppEnv   string
	AppPort  string
	LogLevel string
	APIKey   string // kosong = /api terbuka

	Weather struct {
		BaseURL         string
		Timeout         time.Duration
		DefaultLat      float64
		DefaultLon      float64
		DefaultLocation string
		Days            int
	}
}

func Load() *Config {
	c := &Config{}
	c.AppName = getEnv("APP_NAME", "weather-dashboard")
	c.AppEnv = getEnv("APP_ENV", "development")
	c.AppPort = getEnv("APP_PORT", "8080")
	c.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", "info"))
	c.APIKey = getEnv("API_KEY", "")

	c.Weather.BaseURL = getEnv("WEATHER_API_BASE", "https://api.open-meteo.com")
	c.Weather.Timeout = time.Duration(getEnvInt("WEATHER_TIMEOUT_SEC", 10)) * time.Second
	c.Weather.DefaultLat = getEnvFloat("WEATHER_DEFAULT_LAT", 52.52)
	c.Weather.DefaultLon = getEnvFloat("WEATHER_DEFAULT_LON", 13.41)
	c.Weather.DefaultLocation = getEnv("WEATHER_DEFAULT_LOCATION", "Berlin")
	c.Weather.Days = getEnvInt("WEATHER_FORECAST_DAYS", 5)

	if c.Weather.Days < 1 || c.Weather.Days > 16 {
		log.Printf("[WARN] WEATHER_FORECAST_DAYS=%d out of range 1..16, using 5", c.Weather.Days)
		c.Weather.Days = 5
	}
	if c.APIKey == "" && c.AppEnv == "production" {
		log.Println("[WARN] API_KEY is not set, /api endpoints are public")
	}

	return c
}

// Addr untuk http.Server
func (c *Config) Addr() string { return ":" + c.AppPort }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		_, err := fmt.Sscanf(v, "%d", &i)
		if err == nil {
			return i
		}
		log.Printf("[WARN] %s=%q is not an integer, using %d", key, v, def)
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		var f float64
		_, err := fmt.Sscanf(v, "%g", &f)
		if err == nil {
			return f
		}
		log.Printf("[WARN] %s=%q is not a number, using %g", key, v, def)
	}
	return def
}
