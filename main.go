package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"food-express-backend/app"
	"food-express-backend/config"
	"food-express-backend/db"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist).
	// In production, variables should be set directly.
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("Warning: .env file not found, using system environment variables")
		} else {
			log.Printf("Loaded environment variables from .env")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	cleanup, err := app.Initialize(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()
	defer db.CloseDB()

	// Listen on 0.0.0.0 to accept connections from all interfaces.
	port := cfg.Port
	if len(port) > 0 && port[0] == ':' {
		port = port[1:]
	}
	addr := "0.0.0.0:" + port
	log.Printf("Server starting on %s", addr)

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
