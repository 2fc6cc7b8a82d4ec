package main

import (
	"log"

	"github.com/techhorizons/website/internal/app"

	"github.com/joho/godotenv"
)

func main() {

	// Load the .env file if present, valid for local runs
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded; %v", err)
	}

	// Wire the app, register the routes and run the HTTP server
	if err := app.New().RegisterRoutes().Run(); err != nil {
		log.Fatalf("http server error: %v", err)
	}
}
