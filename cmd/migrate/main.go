package main

import (
	"waitlist_backend/internal/config" // Custom import path (Config)
	"waitlist_backend/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Connect with the configured Postgres connection string and migrate
	db.Migrate(cfg.DatabaseURL)
}
