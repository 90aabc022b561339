package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cmsenrich/internal/config"
	"cmsenrich/internal/enricher"
	"cmsenrich/internal/logger"
	"cmsenrich/internal/whatcms"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environment variables still apply without it
	_ = godotenv.Load()

	flags := ParseFlags()

	log.Println("[INFO] Main: Attempting to load global configuration...")
	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not load global config using path '%s': %v", flags.ConfigFile, err)
	}

	applyFlagOverrides(flags,
		&gCfg.EnrichConfig.InputFile,
		&gCfg.EnrichConfig.OutputFile,
		&gCfg.EnrichConfig.SheetName,
	)
	requireFile("input", gCfg.EnrichConfig.InputFile)
	requireFile("output", gCfg.EnrichConfig.OutputFile)

	if err := config.ValidateConfig(gCfg); err != nil {
		log.Fatalf("[FATAL] Main: Configuration validation failed: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not initialize logger: %v", err)
	}
	zLogger.Info().Msg("Logger initialized successfully.")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := whatcms.NewClient(gCfg.ClientConfig, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not initialize WhatCMS client")
	}

	app := enricher.NewEnricher(gCfg.EnrichConfig, client, zLogger)

	summary, err := app.Run(ctx)
	if err != nil {
		zLogger.Error().Err(err).Msg("Enrichment run failed")
		os.Exit(1)
	}

	zLogger.Info().
		Str("output_file", summary.OutputFile).
		Int("total_rows", summary.TotalRows).
		Int("failed_rows", summary.FailedRows).
		Msg("cmsenrich finished")
}
