package main

import (
	"os"

	"github.com/jdrincon/acadplan/internal/pkg/logger"
	"github.com/jdrincon/acadplan/internal/server"
)

// @title AcadPlan API
// @version 1.0
// @description Curriculum advisor API that recommends next-term course loads for university programs

// @contact.name API Support
// @contact.email soporte@acadplan.co

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// Initialize the server with all its dependencies
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
