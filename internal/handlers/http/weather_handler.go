// internal/handlers/http/weather_handler.go
// GET /api/weather -> forecast + label tanggal dalam JSON

package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"weather-dashboard/internal/services"
	"weather-dashboard/internal/util"
)

type WeatherDeps struct {
	Service  *services.DashboardService
	Defaults Defaults
}

func NewWeatherHandler(deps WeatherDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseWeatherQuery(r, deps.Defaults)
		if err != nil {
			util.WriteError(w, err)
			return
		}

		ctx := r.Context()
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, 15*time.Second)
			defer cancel()
		}

		weatherRequests.Add(1)
		d, err := deps.Service.Build(ctx, q)
		if err != nil {
			weatherErrors.Add(1)
			log.Printf("[ERROR] weather lat=%.4f lon=%.4f: %v", q.Latitude, q.Longitude, err)
			util.WriteError(w, util.Upstream("weather provider unavailable"))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(d)
	}
}
