package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/propflow/leadboard/internal/config"
	httphandler "github.com/propflow/leadboard/internal/handler/http"
	"github.com/propflow/leadboard/internal/logger"
	"github.com/propflow/leadboard/internal/server"
	"github.com/propflow/leadboard/internal/settings"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// .env is read here at the process edge and nowhere else
	_ = godotenv.Load()

	log := logger.NewLogger("dashboard")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("settings_path", cfg.Dashboard.SettingsPath).
		Msg("received configs")

	store := settings.NewStore(cfg.Dashboard.SettingsPath)

	handlers := httphandler.NewHandler(store, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
