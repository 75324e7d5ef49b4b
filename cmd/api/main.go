package main

import (
	"os"

	"github.com/akademik/akademik/internal/pkg/logger"
	"github.com/akademik/akademik/internal/server"
)

// @title Akademik API
// @version 1.0
// @description Academic records gateway. Every route calls one stored procedure.

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token returned by /auth/login

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
