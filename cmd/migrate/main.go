package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/techhorizons/website/internal/cms"
	"github.com/techhorizons/website/internal/config"
	"github.com/techhorizons/website/internal/migrate"

	"github.com/joho/godotenv"
)

func main() {

	exportPath := flag.String("export", "export.json", "path to the legacy JSON export")
	flag.Parse()

	// Load the .env file if present, valid for local runs
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded; %v", err)
	}

	// Listen for interruption signals, a long import can be aborted
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.New()
	cmsClient := cms.New(cfg)

	if err := migrate.New(cmsClient, cfg).Run(ctx, *exportPath); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}
