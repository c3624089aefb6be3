// cmd/forecast/main_test.go
package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"weather-dashboard/pkg/weather"
)

type fakeProvider struct{}

func (fakeProvider) GetForecast(_ context.Context, q weather.Query) (weather.Forecast, error) {
	return weather.Forecast{
		Location: q.Location,
		Current:  weather.Current{Time: "2025-07-24T15:00", TempC: 31.2, Condition: "Clear sky"},
		Daily: []weather.Day{
			{Date: "2025-07-24", MaxC: 31.2, MinC: 22.0, Condition: "Clear sky"},
			{Date: "2025-07-01", MaxC: 25.0, MinC: 15.5, Condition: "Rain"},
		},
	}, nil
}

func TestForecastCommandPrintsLabels(t *testing.T) {
	cmd := newRootCmd(fakeProvider{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--lat", "52.52", "--lon", "13.41", "--days", "2", "--location", "Berlin"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Berlin", "Thu, Jul 24", "Tue, Jul 1 ", "Rain"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestForecastCommandRejectsBadLatitude(t *testing.T) {
	cmd := newRootCmd(fakeProvider{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--lat", "95"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected validation error for latitude 95")
	}
}
