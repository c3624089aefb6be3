// internal/handlers/http/metrics_handler.go
// Handler untuk metrics Prometheus format sederhana

package http

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

var (
	weatherRequests atomic.Int64
	weatherErrors   atomic.Int64
)

func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintf(w, "# HELP app_up 1 if the app is up\n# TYPE app_up gauge\napp_up 1\n")
	fmt.Fprintf(w, "# HELP weather_requests_total Forecast fetches attempted\n# TYPE weather_requests_total counter\nweather_requests_total %d\n", weatherRequests.Load())
	fmt.Fprintf(w, "# HELP weather_errors_total Forecast fetches that failed\n# TYPE weather_errors_total counter\nweather_errors_total %d\n", weatherErrors.Load())
}
