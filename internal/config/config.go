package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDSN     string
	UploadDir string
	LogFile   string
}

func Load() Config {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "wearline.db" // sqlite file in project root
	}
	uploads := os.Getenv("UPLOAD_DIR")
	if uploads == "" {
		uploads = "./web/uploads"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, UploadDir: uploads, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s UPLOAD_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.UploadDir, cfg.LogFile)
	return cfg
}
