package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/cartable/api/internal/pkg/logger"
	"github.com/cartable/api/internal/server"
)

// @title Cartable API
// @version 1.0
// @description CRUD API for course metadata and their PDF attachments

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		// Use the default logger setup by the logger package's init
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
