package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Apurer/groomer-directory/internal/app/api"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env file not found, relying on environment")
	}
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := api.Run(ctx, cfg); err != nil {
		log.Fatalf("directory API stopped: %v", err)
	}
}
