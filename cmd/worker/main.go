package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/techhorizons/website/internal/worker"

	"github.com/joho/godotenv"
)

func main() {

	// Load the .env file if present, valid for local runs
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded; %v", err)
	}

	// Listen for interruption signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create and run the worker
	if err := worker.New().Run(ctx); err != nil {
		log.Println(err)
	}
}
