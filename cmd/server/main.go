package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-asset-keeper/internal/catalog"
	"github.com/MKhiriev/go-asset-keeper/internal/config"
	"github.com/MKhiriev/go-asset-keeper/internal/handler"
	"github.com/MKhiriev/go-asset-keeper/internal/logger"
	"github.com/MKhiriev/go-asset-keeper/internal/metrics"
	"github.com/MKhiriev/go-asset-keeper/internal/server"
	"github.com/MKhiriev/go-asset-keeper/internal/service"
	"github.com/MKhiriev/go-asset-keeper/internal/store"
	"github.com/MKhiriev/go-asset-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("asset-keeper-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("asset-keeper-server", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	assetCatalog, err := catalog.Load(cfg.App.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.App.CatalogPath).Msg("error loading asset catalog")
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, assetCatalog, cfg.App, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
