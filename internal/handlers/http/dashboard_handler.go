// internal/handlers/http/dashboard_handler.go
// Halaman utama: header, tombol "Get Weather", dan hasil forecast (server-side render)

package http

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"weather-dashboard/internal/services"
	"weather-dashboard/internal/util"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

type DashboardDeps struct {
	Title    string
	Service  *services.DashboardService
	Defaults Defaults
}

type dashboardPage struct {
	Title     string
	Today     string
	Lat       string
	Lon       string
	Days      int
	Error     string
	Dashboard *services.Dashboard
}

func NewDashboardHandler(deps DashboardDeps) http.HandlerFunc {
	if deps.Title == "" {
		deps.Title = "Weather Dashboard"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		page := dashboardPage{
			Title: deps.Title,
			Today: deps.Service.Today(),
			Lat:   strconv.FormatFloat(deps.Defaults.Latitude, 'f', -1, 64),
			Lon:   strconv.FormatFloat(deps.Defaults.Longitude, 'f', -1, 64),
			Days:  deps.Defaults.Days,
		}
		status := http.StatusOK

		// Forecast hanya diambil setelah tombol ditekan (?get=1) atau koordinat dikirim.
		qs := r.URL.Query()
		if qs.Get("get") != "" || qs.Get("lat") != "" || qs.Get("lon") != "" {
			status = fillForecast(r, deps, &page)
		}

		var buf bytes.Buffer
		if err := dashboardTmpl.Execute(&buf, page); err != nil {
			log.Printf("[ERROR] render dashboard: %v", err)
			http.Error(w, "render error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = buf.WriteTo(w)
	}
}

func fillForecast(r *http.Request, deps DashboardDeps, page *dashboardPage) int {
	q, err := parseWeatherQuery(r, deps.Defaults)
	// echo input user kembali ke form
	if v := r.URL.Query().Get("lat"); v != "" {
		page.Lat = v
	}
	if v := r.URL.Query().Get("lon"); v != "" {
		page.Lon = v
	}
	if q.Days > 0 {
		page.Days = q.Days
	}
	if err != nil {
		var status int
		page.Error, status = pageError(err)
		return status
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	weatherRequests.Add(1)
	d, err := deps.Service.Build(ctx, q)
	if err != nil {
		weatherErrors.Add(1)
		log.Printf("[ERROR] dashboard weather lat=%.4f lon=%.4f: %v", q.Latitude, q.Longitude, err)
		page.Error = "Could not load weather right now. Please try again."
		return http.StatusBadGateway
	}
	page.Dashboard = &d
	return http.StatusOK
}

// pageError: pesan & status untuk error input; error non-AppError dianggap bad_input.
func pageError(err error) (string, int) {
	var ae util.AppError
	if !errors.As(err, &ae) {
		ae = util.BadInput(err.Error())
	}
	return ae.Message, ae.HTTPStatus()
}
