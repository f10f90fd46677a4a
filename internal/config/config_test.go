package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "DB_PATH", "ALLOW_ORIGIN", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr: got %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.DBPath != "./data/inventory.db" {
		t.Errorf("DBPath: got %q", cfg.DBPath)
	}
	if cfg.AllowOrigin != "http://localhost:5173" {
		t.Errorf("AllowOrigin: got %q", cfg.AllowOrigin)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Errorf("ShutdownTimeout: got %v, want 15s", cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("ALLOW_ORIGIN", "https://shop.example.com")
	t.Setenv("SHUTDOWN_TIMEOUT", "30")

	cfg := Load()
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr: got %q, want :9090", cfg.HTTPAddr)
	}
	if cfg.DBPath != "/tmp/other.db" {
		t.Errorf("DBPath: got %q", cfg.DBPath)
	}
	if cfg.AllowOrigin != "https://shop.example.com" {
		t.Errorf("AllowOrigin: got %q", cfg.AllowOrigin)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout: got %v, want 30s", cfg.ShutdownTimeout)
	}
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-number")

	cfg := Load()
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Errorf("ShutdownTimeout: got %v, want default 15s", cfg.ShutdownTimeout)
	}
}
