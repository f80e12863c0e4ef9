package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/fieldwise-sentinel/internal/agent"
	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("sentinel")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	redacted := *cfg
	redacted.Adapter.Token = ""
	log.Debug().Any("config", redacted).Msg("received configs")

	ctx := context.Background()
	app, err := agent.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init agent error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("agent run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
