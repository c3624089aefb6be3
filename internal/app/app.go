// internal/app/app.go
package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"weather-dashboard/internal/config"
	"weather-dashboard/internal/middleware"
	"weather-dashboard/internal/services"
	"weather-dashboard/internal/util"
	"weather-dashboard/pkg/weather"
)

// App menampung router utama
type App struct {
	Router *mux.Router
	Config *config.Config
}

// Options untuk override dependency (dipakai di test).
type Options struct {
	Provider weather.Provider
	Clock    util.Clock
	Version  string
}

// New membuat instance App + registrasi semua routes
func New(cfg *config.Config, opts Options) *App {
	if cfg == nil {
		cfg = config.Load()
	}
	if opts.Provider == nil {
		opts.Provider = weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.Timeout)
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	svc := services.NewDashboardService(opts.Provider, opts.Clock)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	if cfg.LogLevel != "warn" && cfg.LogLevel != "error" {
		r.Use(middleware.AccessLog)
	}
	r.Use(middleware.CORS)

	RegisterRoutesWithDeps(r, RegisterDeps{
		AppName:  cfg.AppName,
		Version:  opts.Version,
		APIKey:   cfg.APIKey,
		Service:  svc,
		Defaults: defaultsFrom(cfg),
	})

	return &App{Router: r, Config: cfg}
}

// Run menjalankan server HTTP sampai ctx selesai, lalu graceful shutdown (maks 10 detik).
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.Config.Addr(),
		Handler:      a.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] %s (%s) running on %s", a.Config.AppName, a.Config.AppEnv, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("[INFO] shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func defaultsFrom(cfg *config.Config) RegisterDefaults {
	return RegisterDefaults{
		Latitude:  cfg.Weather.DefaultLat,
		Longitude: cfg.Weather.DefaultLon,
		Location:  cfg.Weather.DefaultLocation,
		Days:      cfg.Weather.Days,
	}
}
