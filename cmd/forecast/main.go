// cmd/forecast/main.go
// CLI: cetak forecast harian dengan label tanggal UTC, sekali atau periodik
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"weather-dashboard/internal/config"
	"weather-dashboard/internal/services"
	"weather-dashboard/internal/util"
	"weather-dashboard/pkg/weather"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd; provider nil -> Open-Meteo client dari config.
func newRootCmd(provider weather.Provider) *cobra.Command {
	cfg := config.Load()
	var (
		lat      float64
		lon      float64
		days     int
		location string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:          "forecast",
		Short:        "Print the daily forecast with short UTC date labels",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if provider == nil {
				provider = weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.Timeout)
			}
			svc := services.NewDashboardService(provider, util.RealClock{})
			q := weather.Query{Latitude: lat, Longitude: lon, Days: days, Location: location}
			if err := weather.Validate(q); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := printOnce(ctx, cmd.OutOrStdout(), svc, q); err != nil || interval <= 0 {
				return err
			}

			t := time.NewTicker(interval)
			defer t.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-t.C:
					if err := printOnce(ctx, cmd.OutOrStdout(), svc, q); err != nil {
						// jangan berhenti di mode periodik, coba lagi di tick berikutnya
						log.Printf("[WARN] forecast: %v", err)
					}
				}
			}
		},
	}

	f := cmd.Flags()
	f.Float64Var(&lat, "lat", cfg.Weather.DefaultLat, "latitude")
	f.Float64Var(&lon, "lon", cfg.Weather.DefaultLon, "longitude")
	f.IntVar(&days, "days", cfg.Weather.Days, "forecast days (1-16)")
	f.StringVar(&location, "location", cfg.Weather.DefaultLocation, "display name for the location")
	f.DurationVar(&interval, "interval", 0, "repeat every interval (0 = print once)")
	return cmd
}

func printOnce(ctx context.Context, w io.Writer, svc *services.DashboardService, q weather.Query) error {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	d, err := svc.Build(ctx, q)
	if err != nil {
		return err
	}
	name := d.Location
	if name == "" {
		name = fmt.Sprintf("%.2f,%.2f", q.Latitude, q.Longitude)
	}
	fmt.Fprintf(w, "%s  now %.1f°C %s (%s)\n", name, d.Current.TempC, d.Current.Condition, d.Current.Label)
	for _, day := range d.Days {
		fmt.Fprintf(w, "%-12s %-16s %5.1f°C / %5.1f°C\n", day.Label, day.Condition, day.MaxC, day.MinC)
	}
	return nil
}
