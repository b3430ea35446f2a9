package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/MaximZagorsk/polls-drf-api/config"
	models "github.com/MaximZagorsk/polls-drf-api/pkg/db"
	"github.com/MaximZagorsk/polls-drf-api/pkg/logger"
)

// Fills the configured database with demo data so the API has something to
// serve on a fresh checkout.
func main() {
	logger.Init()

	if err := godotenv.Load(); err != nil {
		logger.Info(".env file not found, proceeding with environment variables")
	}
	config.ForceReload()
	cfg := config.Get()

	dirpath := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(dirpath, os.ModePerm); err != nil {
		logger.Err("failed to create directory '"+dirpath+"':", err)
		os.Exit(1)
	}

	db, err := models.InitialiseDatabase(cfg.Database.Path)
	if err != nil {
		logger.Err(err)
		os.Exit(1)
	}

	if err := models.SeedDummyData(db); err != nil {
		logger.Err("failed to seed:", err)
		os.Exit(1)
	}

	logger.Info("Seeded", cfg.Database.Path)
}
