package main

import (
	"context"
	"log"
	"time"

	"github.com/techhorizons/website/internal/backup"
	"github.com/techhorizons/website/internal/cms"
	"github.com/techhorizons/website/internal/config"
	"github.com/techhorizons/website/internal/r2"

	"github.com/joho/godotenv"
)

func main() {

	// Load the .env file if present, valid for local runs
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded; %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg := config.New()
	cmsClient := cms.New(cfg)
	s3Client := r2.New(ctx, cfg)

	if err := backup.New(cfg, cmsClient, s3Client).Run(ctx); err != nil {
		log.Fatalf("backup failed: %v", err)
	}
}
