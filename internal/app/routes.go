// internal/app/routes.go
package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/mux"

	hh "weather-dashboard/internal/handlers/http"
	"weather-dashboard/internal/middleware"
	"weather-dashboard/internal/services"
)

type RegisterDefaults = hh.Defaults

type RegisterDeps struct {
	AppName  string
	Version  string
	APIKey   string
	Service  *services.DashboardService
	Defaults RegisterDefaults
}

// RegisterRoutesWithDeps menambahkan route halaman, health, dan /api.
func RegisterRoutesWithDeps(r *mux.Router, deps RegisterDeps) {
	health := hh.NewHealthHandler(deps.AppName, deps.Version)

	// --- no prefix ---
	r.HandleFunc("/", hh.NewDashboardHandler(hh.DashboardDeps{
		Service:  deps.Service,
		Defaults: deps.Defaults,
	})).Methods(http.MethodGet)
	r.HandleFunc("/healthz", health).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health).Methods(http.MethodGet)
	r.HandleFunc("/metrics", hh.MetricsHandler).Methods(http.MethodGet)

	// --- /api prefix (chi subrouter, supaya FE/JS bisa pakai /api/...) ---
	r.PathPrefix("/api").Handler(apiRouter(deps))
}

func apiRouter(deps RegisterDeps) http.Handler {
	cr := chi.NewRouter()
	cr.Route("/api", func(api chi.Router) {
		api.Use(preflight)
		api.Use(middleware.APIKey(deps.APIKey))

		api.Get("/healthz", hh.NewHealthHandler(deps.AppName, deps.Version))
		api.Get("/weather", hh.NewWeatherHandler(hh.WeatherDeps{
			Service:  deps.Service,
			Defaults: deps.Defaults,
		}))
		api.Get("/date-label", hh.DateLabelHandler)
	})
	return cr
}

// preflight: semua OPTIONS di /api dijawab 204 sebelum routing chi.
func preflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			hh.PreflightHandler(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
