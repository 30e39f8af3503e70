package main

import (
	"os"

	"github.com/kaan/staffdesk/internal/pkg/logger"
	"github.com/kaan/staffdesk/internal/server"
)

func main() {
	// NewServer orchestrates config/logger setup, database connection,
	// dependency wiring and router construction.
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives or the listener fails.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
