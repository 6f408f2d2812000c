// Package server builds the Echo application and wires the channels.
package server

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/panoptikauth/panoptikauth/internal/config"
	"github.com/panoptikauth/panoptikauth/internal/dispatch"
	"github.com/panoptikauth/panoptikauth/internal/gotify"
	"github.com/panoptikauth/panoptikauth/internal/handler"
	"github.com/panoptikauth/panoptikauth/internal/metrics"
)

// Server holds the Echo app and its configuration.
type Server struct {
	Echo   *echo.Echo
	Config *config.Config
}

// New builds the Echo server, registers the outbound channels and mounts
// the routes.
func New(cfg *config.Config, log zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.Logger())
	e.Server.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second

	channels := dispatch.NewRegistry()
	channels.Register(dispatch.ChannelWebhook, gotify.NewClient(cfg.GotifyURL, cfg.GotifyToken, log))
	channels.Register(dispatch.ChannelSlack, gotify.NewClient(cfg.GotifyURL, cfg.SlackToken, log))

	webhook := &handler.WebhookHandler{Channels: channels, Log: log}
	slack := &handler.SlackHandler{Channels: channels, Title: cfg.SlackTitle, Log: log}

	e.POST("/webhook", webhook.Handle)
	e.POST("/slack", slack.Handle)
	e.GET("/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	return &Server{Echo: e, Config: cfg}
}

// Start starts the HTTP server and blocks until the context is cancelled
// or the server fails. On cancel, Shutdown drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.Shutdown(shutdownCtx)
	}()
	return s.Echo.Start(":" + s.Config.ServerPort)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}
