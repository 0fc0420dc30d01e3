package main

import (
	"fmt"
	"net/http"

	"example/storefront/internal/config"
	"example/storefront/internal/logger"
	"example/storefront/internal/seed"
	"example/storefront/internal/server"
)

func main() {
	// Load .env file before anything reads the environment
	envErr := config.LoadEnvFile()
	cfg := config.Load()

	// Initialize logger
	if cfg.LogMode == "production" {
		logger.InitLogger(cfg.LogLevel)
	} else {
		logger.InitLoggerDev()
	}
	defer logger.Sync()

	logger.Log.Info("Starting storefront server")
	if envErr != nil {
		logger.Log.Warnw("No .env file found, using existing environment variables", "error", envErr)
	}

	// Initialize store
	store, err := server.OpenStore(cfg)
	if err != nil {
		logger.Log.Fatalw("Failed to initialize store", "error", err)
	}
	defer store.Close()

	if cfg.SeedOnStart {
		seed.Initialize(store)
	}

	srv := server.New(store)

	// Set up HTTP routes
	http.HandleFunc("/ws", srv.HandleWebSocket)
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Storefront API Server\nConnect to ws://localhost%s/ws\n", cfg.ListenAddr)
	})

	// Start server
	logger.Log.Infow("WebSocket server starting", "addr", cfg.ListenAddr, "endpoint", "/ws")
	if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
		logger.Log.Fatalw("Server error", "error", err)
	}
}
