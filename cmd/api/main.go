// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"weather-dashboard/internal/app"
	"weather-dashboard/internal/config"
)

var BuildVersion = "dev" // diisi saat ldflags

func main() {
	cfg := config.Load()
	a := app.New(cfg, app.Options{Version: BuildVersion})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
