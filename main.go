package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/revcopy/adminctl/internal/api"
	"github.com/revcopy/adminctl/internal/auth"
	"github.com/revcopy/adminctl/internal/cli"
	"github.com/revcopy/adminctl/internal/config"
	"github.com/revcopy/adminctl/internal/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := config.EnsureConfigDir(); err != nil {
		log.Fatal().Err(err).Msg("failed to create config directory")
	}

	keeper, err := storage.NewSQLiteKeeper(cfg.DBPath, storage.DeriveKey(cfg.TokenKey))
	if err != nil {
		log.Fatal().Err(err).Str("dbPath", cfg.DBPath).Msg("failed to open credential store")
	}
	defer keeper.Close()

	store := auth.NewStore(keeper)

	client := api.NewClient(api.ClientOpts{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.RequestTimeout,
		Store:   store,
		OnAuthFailure: func() {
			fmt.Fprintln(os.Stderr, `Session expired. Run "adminctl login" to authenticate again.`)
		},
	})

	// Cancel on SIGINT or SIGTERM so long-running commands shut down cleanly.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := &cli.App{
		Client: client,
		Store:  store,
		Config: cfg,
	}

	if err := cli.Execute(ctx, app); err != nil {
		os.Exit(1)
	}
}
