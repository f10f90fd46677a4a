// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the knobs for the HTTP server and storage.
type Config struct {
	// HTTPAddr is the listen address of the REST API.
	HTTPAddr string

	// DBPath is the SQLite database file path.
	DBPath string

	// AllowOrigin is the single front-end origin permitted by CORS.
	AllowOrigin string

	// ShutdownTimeout bounds how long in-flight requests may run after a
	// termination signal.
	ShutdownTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durenvs(key string, defSec int) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return time.Duration(defSec) * time.Second
	}
	sec, err := strconv.Atoi(v)
	if err != nil {
		return time.Duration(defSec) * time.Second
	}
	return time.Duration(sec) * time.Second
}

// Load collects configuration from the environment with defaults.
// A .env file in the working directory is read first when present.
func Load() Config {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		DBPath:          getenv("DB_PATH", "./data/inventory.db"),
		AllowOrigin:     getenv("ALLOW_ORIGIN", "http://localhost:5173"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 15),
	}
}
