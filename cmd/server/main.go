package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mmynk/inventoryhub/internal/config"
	"github.com/mmynk/inventoryhub/internal/server"
	"github.com/mmynk/inventoryhub/internal/service"
	"github.com/mmynk/inventoryhub/internal/storage/sqlite"
	"github.com/mmynk/inventoryhub/pkg/logging"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	// Construct services once and hand them to the HTTP layer explicitly.
	products := service.NewProductService(store)
	billing := service.NewBillingService(store)
	srv := server.New(cfg, products, billing)

	go func() {
		slog.Info("Server starting", "address", cfg.HTTPAddr, "allow_origin", cfg.AllowOrigin)
		if err := srv.Listen(cfg.HTTPAddr); err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down", "timeout", cfg.ShutdownTimeout)
	if err := srv.Shutdown(cfg.ShutdownTimeout); err != nil {
		slog.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
}
