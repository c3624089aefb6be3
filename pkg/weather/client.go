// pkg/weather/client.go
// Client untuk Open-Meteo forecast API (tanpa API key)

package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/imroc/req"
)

const (
	DefaultBaseURL = "https://api.open-meteo.com"
	DefaultDays    = 5
)

var validate = validator.New()

// Provider adalah kontrak sumber forecast (dipakai service & fake di test).
type Provider interface {
	GetForecast(ctx context.Context, q Query) (Forecast, error)
}

type Query struct {
	Location  string  `json:"location,omitempty"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Days      int     `json:"days" validate:"min=1,max=16"`
}

type Current struct {
	Time      string  `json:"time"` // ISO, UTC
	TempC     float64 `json:"temp_c"`
	WindKmh   float64 `json:"wind_kmh"`
	Code      int     `json:"code"`
	Condition string  `json:"condition"`
}

type Day struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	MaxC      float64 `json:"max_c"`
	MinC      float64 `json:"min_c"`
	Code      int     `json:"code"`
	Condition string  `json:"condition"`
}

type Forecast struct {
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Current   Current `json:"current"`
	Daily     []Day   `json:"daily"`
}

// payload mentah dari Open-Meteo
type apiResponse struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	CurrentWeather struct {
		Time        string  `json:"time"`
		Temperature float64 `json:"temperature"`
		Windspeed   float64 `json:"windspeed"`
		Weathercode int     `json:"weathercode"`
	} `json:"current_weather"`
	Daily struct {
		Time             []string  `json:"time"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
		Weathercode      []int     `json:"weathercode"`
	} `json:"daily"`
}

type Client struct {
	baseURL string
	r       *req.Req
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	r := req.New()
	r.SetClient(&http.Client{Timeout: timeout})
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		r:       r,
	}
}

// Validate cek range koordinat & jumlah hari.
func Validate(q Query) error {
	if err := validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid %s: must satisfy %s=%s", strings.ToLower(fe.Field()), fe.Tag(), fe.Param())
		}
		return err
	}
	return nil
}

func (c *Client) GetForecast(ctx context.Context, q Query) (Forecast, error) {
	if q.Days == 0 {
		q.Days = DefaultDays
	}
	if err := Validate(q); err != nil {
		return Forecast{}, err
	}

	params := req.QueryParam{
		"latitude":        q.Latitude,
		"longitude":       q.Longitude,
		"current_weather": "true",
		"daily":           "temperature_2m_max,temperature_2m_min,weathercode",
		"timezone":        "UTC",
		"forecast_days":   q.Days,
	}
	resp, err := c.r.Get(c.baseURL+"/v1/forecast", params, req.Header{"Accept": "application/json"}, ctx)
	if err != nil {
		return Forecast{}, fmt.Errorf("weather request: %w", err)
	}
	if code := resp.Response().StatusCode; code < 200 || code > 299 {
		return Forecast{}, fmt.Errorf("weather api status %d: %s", code, excerpt(resp.String(), 200))
	}

	var raw apiResponse
	if err := resp.ToJSON(&raw); err != nil {
		return Forecast{}, fmt.Errorf("decode weather response: %w", err)
	}
	return toForecast(q, raw)
}

func toForecast(q Query, raw apiResponse) (Forecast, error) {
	d := raw.Daily
	n := len(d.Time)
	if len(d.Temperature2mMax) != n || len(d.Temperature2mMin) != n || len(d.Weathercode) != n {
		return Forecast{}, fmt.Errorf("weather response: daily arrays length mismatch (time=%d max=%d min=%d code=%d)",
			n, len(d.Temperature2mMax), len(d.Temperature2mMin), len(d.Weathercode))
	}

	out := Forecast{
		Location:  q.Location,
		Latitude:  raw.Latitude,
		Longitude: raw.Longitude,
		Current: Current{
			Time:      raw.CurrentWeather.Time,
			TempC:     raw.CurrentWeather.Temperature,
			WindKmh:   raw.CurrentWeather.Windspeed,
			Code:      raw.CurrentWeather.Weathercode,
			Condition: Describe(raw.CurrentWeather.Weathercode),
		},
		Daily: make([]Day, 0, n),
	}
	for i := 0; i < n; i++ {
		out.Daily = append(out.Daily, Day{
			Date:      d.Time[i],
			MaxC:      d.Temperature2mMax[i],
			MinC:      d.Temperature2mMin[i],
			Code:      d.Weathercode[i],
			Condition: Describe(d.Weathercode[i]),
		})
	}
	return out, nil
}

func (c *Client) String(f Forecast) string {
	loc := f.Location
	if loc == "" {
		loc = fmt.Sprintf("%.2f,%.2f", f.Latitude, f.Longitude)
	}
	return fmt.Sprintf("%s: %.1f C, %s", loc, f.Current.TempC, f.Current.Condition)
}

func excerpt(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
