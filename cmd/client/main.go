package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-asset-keeper/internal/adapter"
	"github.com/MKhiriev/go-asset-keeper/internal/config"
	"github.com/MKhiriev/go-asset-keeper/internal/logger"
	"github.com/MKhiriev/go-asset-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, config.ClientUsage())
		os.Exit(2)
	}

	log := logger.NewClientLogger("asset-keeper-client", cfg.LogLevel)

	assetAdapter, err := adapter.NewHTTPAssetAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	cli := &commandLine{
		adapter:   assetAdapter,
		buildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		logger:    log,
	}

	if err = cli.run(context.Background(), args); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, config.ClientUsage())
			os.Exit(2)
		}
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
