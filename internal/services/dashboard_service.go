// internal/services/dashboard_service.go
// Layanan dashboard: ambil forecast lalu siapkan label tanggal (UTC) untuk UI/API

package services

import (
	"context"
	"fmt"
	"log"

	"weather-dashboard/internal/util"
	"weather-dashboard/pkg/datefmt"
	"weather-dashboard/pkg/weather"
)

type CurrentView struct {
	Label     string  `json:"label"`
	Time      string  `json:"time"`
	TempC     float64 `json:"temp_c"`
	WindKmh   float64 `json:"wind_kmh"`
	Condition string  `json:"condition"`
}

type DayView struct {
	Label     string  `json:"label"`
	Date      string  `json:"date"`
	MaxC      float64 `json:"max_c"`
	MinC      float64 `json:"min_c"`
	Condition string  `json:"condition"`
}

type Summary struct {
	MinC         float64 `json:"min_c"`
	MaxC         float64 `json:"max_c"`
	WarmestLabel string  `json:"warmest_label"`
	ColdestLabel string  `json:"coldest_label"`
}

type Dashboard struct {
	Location  string      `json:"location"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Today     string      `json:"today"`
	Current   CurrentView `json:"current"`
	Days      []DayView   `json:"days"`
	Summary   *Summary    `json:"summary,omitempty"`
}

type DashboardService struct {
	provider weather.Provider
	clock    util.Clock
}

func NewDashboardService(p weather.Provider, clock util.Clock) *DashboardService {
	if clock == nil {
		clock = util.RealClock{}
	}
	return &DashboardService{provider: p, clock: clock}
}

// Today label tanggal hari ini (kalender UTC).
func (s *DashboardService) Today() string {
	return datefmt.Label(s.clock.Now())
}

// Build mengambil forecast dan merakit view. Error provider dikembalikan apa adanya.
func (s *DashboardService) Build(ctx context.Context, q weather.Query) (Dashboard, error) {
	f, err := s.provider.GetForecast(ctx, q)
	if err != nil {
		return Dashboard{}, fmt.Errorf("get forecast: %w", err)
	}

	d := Dashboard{
		Location:  f.Location,
		Latitude:  f.Latitude,
		Longitude: f.Longitude,
		Today:     s.Today(),
		Current: CurrentView{
			Label:     labelOrRaw(f.Current.Time),
			Time:      f.Current.Time,
			TempC:     f.Current.TempC,
			WindKmh:   f.Current.WindKmh,
			Condition: f.Current.Condition,
		},
		Days: make([]DayView, 0, len(f.Daily)),
	}
	for _, day := range f.Daily {
		d.Days = append(d.Days, DayView{
			Label:     labelOrRaw(day.Date),
			Date:      day.Date,
			MaxC:      day.MaxC,
			MinC:      day.MinC,
			Condition: day.Condition,
		})
	}
	d.Summary = summarize(d.Days)
	return d, nil
}

// labelOrRaw: kalau API mengirim tanggal aneh, tampilkan string mentahnya saja.
func labelOrRaw(raw string) string {
	label, err := datefmt.Format(raw)
	if err != nil {
		log.Printf("[WARN] format date %q: %v", raw, err)
		return raw
	}
	return label
}

func summarize(days []DayView) *Summary {
	if len(days) == 0 {
		return nil
	}
	warm, cold := days[0], days[0]
	for _, d := range days[1:] {
		if d.MaxC > warm.MaxC {
			warm = d
		}
		if d.MinC < cold.MinC {
			cold = d
		}
	}
	return &Summary{
		MinC:         cold.MinC,
		MaxC:         warm.MaxC,
		WarmestLabel: warm.Label,
		ColdestLabel: cold.Label,
	}
}
