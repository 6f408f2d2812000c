package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/panoptikauth/panoptikauth/internal/config"
	"github.com/panoptikauth/panoptikauth/internal/server"
)

func main() {
	// A .env file is optional; real deployments set the environment.
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	if cfg.GotifyURL == "" || cfg.GotifyToken == "" {
		log.Warn().Msg("gotify channel not configured; /webhook will answer 503")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, log)
	log.Info().Str("port", cfg.ServerPort).Msg("panoptikauth listening")
	if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
