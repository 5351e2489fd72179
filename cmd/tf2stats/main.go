// Package main provides the tf2stats command, which writes a Markdown report
// of a player's Team Fortress 2 statistics.
//
// Usage:
//
//	tf2stats [-config file] [-output file] [-catalog file] [-templates dir] [steamid64 apikey]
//
// Without exactly two positional arguments the command prompts for both.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/tf2stats/internal/config"
	"github.com/cory-johannsen/tf2stats/internal/credentials"
	"github.com/cory-johannsen/tf2stats/internal/observability"
	"github.com/cory-johannsen/tf2stats/internal/report"
	"github.com/cory-johannsen/tf2stats/internal/reporter"
	"github.com/cory-johannsen/tf2stats/internal/steam"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "optional path to a YAML configuration file")
	outputPath := flag.String("output", "", "override report.output_path")
	catalogPath := flag.String("catalog", "", "override catalog.path")
	templatesDir := flag.String("templates", "", "override report.templates_dir")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *outputPath != "" {
		cfg.Report.OutputPath = *outputPath
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}
	if *templatesDir != "" {
		cfg.Report.TemplatesDir = *templatesDir
	}

	baseLogger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer baseLogger.Sync()
	logger, runID := observability.WithRun(baseLogger)

	creds, err := credentials.Resolve(flag.Args(), os.Stdin, os.Stdout)
	if err != nil {
		logger.Fatal("acquiring credentials", zap.Error(err))
	}

	renderer, err := report.NewRenderer(cfg.Report.TemplatesDir)
	if err != nil {
		logger.Fatal("loading templates", zap.Error(err))
	}

	rep := reporter.New(steam.New(cfg.Steam), renderer, reporter.Options{
		CatalogPath:       cfg.Catalog.Path,
		OutputPath:        cfg.Report.OutputPath,
		DefaultPlayerName: cfg.Report.DefaultPlayerName,
	}, logger)

	logger.Info("generating report",
		zap.String("steam_id", creds.SteamID.String()),
		zap.String("api", cfg.Steam.BaseURL),
	)

	res, err := rep.Run(context.Background(), creds.SteamID, creds.APIKey)
	if err != nil {
		logger.Fatal("generating report", zap.Error(err))
	}
	fmt.Printf("wrote %s for %s in %s (run %s)\n", res.OutputPath, res.PlayerName, time.Since(start).Round(time.Millisecond), runID)
}
