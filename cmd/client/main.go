package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/client"
	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-journal-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-journal-client", cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	app, err := client.NewApp(context.Background(), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run()
	if err = app.Close(); err != nil {
		log.Err(err).Msg("error closing local storage")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("client run error")
	}
}
