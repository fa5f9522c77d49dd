package main

import (
	"context"
	"os"

	"github.com/yigit/turmas/internal/pkg/logger"
	"github.com/yigit/turmas/internal/server"
)

// @title Turmas API
// @version 1.0
// @description Registration ledger for sections, disciplines, students and enrollments
// @BasePath /api

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		// Details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
