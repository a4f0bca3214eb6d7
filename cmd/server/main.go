package main

import (
	"context"
	"fmt"

	"github.com/ivmikh/notes-keeper/internal/config"
	handlerhttp "github.com/ivmikh/notes-keeper/internal/handler/http"
	"github.com/ivmikh/notes-keeper/internal/logger"
	"github.com/ivmikh/notes-keeper/internal/server"
	"github.com/ivmikh/notes-keeper/internal/service"
	"github.com/ivmikh/notes-keeper/internal/session"
	"github.com/ivmikh/notes-keeper/internal/store"
	"github.com/ivmikh/notes-keeper/internal/translate"
	"github.com/ivmikh/notes-keeper/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("notes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// Resolve the cookie signing key before anything serves a request. In
	// production a weak or missing key refuses to start.
	cookieKey, err := config.ProvisionCookieKey(cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error provisioning cookie signing key")
	}
	cfg.App.CookieSignKey = cookieKey

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	provider, err := translate.NewProviderFromConfig(cfg.Translation, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating translation provider")
	}

	services, err := service.NewServices(storages, provider, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	signingMethod, err := utils.SigningMethodFromName(cfg.App.TokenAlgorithm)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving token algorithm")
	}

	sessions, err := session.NewManager(cfg.App.CookieSignKey, signingMethod, cfg.App.CookieTTL(), services.AuthService, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session manager")
	}

	version := cfg.App.Version
	if version == "" {
		version = buildVersion
	}
	handler := handlerhttp.NewHandler(services, sessions, version, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
