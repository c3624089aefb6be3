// internal/handlers/http/query.go
package http

import (
	"net/http"
	"strconv"
	"strings"

	"weather-dashboard/internal/util"
	"weather-dashboard/pkg/weather"
)

// Defaults dipakai jika lat/lon/days tidak dikirim.
type Defaults struct {
	Latitude  float64
	Longitude float64
	Location  string
	Days      int
}

// parseWeatherQuery baca ?lat=&lon=&days=&location= (alias: latitude, longitude).
func parseWeatherQuery(r *http.Request, def Defaults) (weather.Query, error) {
	q := r.URL.Query()
	out := weather.Query{
		Latitude:  def.Latitude,
		Longitude: def.Longitude,
		Location:  def.Location,
		Days:      def.Days,
	}

	latStr := firstNonEmpty(q.Get("lat"), q.Get("latitude"))
	lonStr := firstNonEmpty(q.Get("lon"), q.Get("longitude"))
	if latStr != "" || lonStr != "" {
		// koordinat custom -> nama lokasi default tidak lagi relevan
		out.Location = ""
	}
	if latStr != "" {
		v, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return out, util.BadInput("lat must be a number")
		}
		out.Latitude = v
	}
	if lonStr != "" {
		v, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return out, util.BadInput("lon must be a number")
		}
		out.Longitude = v
	}
	if s := strings.TrimSpace(q.Get("days")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return out, util.BadInput("days must be an integer")
		}
		out.Days = n
	}
	if s := strings.TrimSpace(q.Get("location")); s != "" {
		out.Location = s
	}
	if out.Days == 0 {
		out.Days = weather.DefaultDays
	}

	if err := weather.Validate(out); err != nil {
		return out, util.BadInput(err.Error())
	}
	return out, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
