package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/user/githookbot/internal/config"
	"github.com/user/githookbot/internal/notifier"
	"github.com/user/githookbot/internal/relay"
	"github.com/user/githookbot/internal/rpc"
	"github.com/user/githookbot/internal/server"
	"github.com/user/githookbot/internal/storage"
	"github.com/user/githookbot/internal/telegram"
	"github.com/user/githookbot/pkg/logger"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		// Try to initialize basic logger for error output
		logger.Init(true, "")
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	debug := cfg.Log.Level == "debug"
	if err := logger.Init(debug, cfg.Log.File); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	logger.Info().Msg("Starting GitHook relay bot")

	// Initialize database
	db, err := storage.NewDatabase(cfg.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	store := storage.NewWebhookStore(db)
	logger.Info().Str("path", cfg.Database.Path).Msg("Database initialized")

	// Initialize Telegram bot (management UI + messaging backend connection)
	bot, err := telegram.NewBot(cfg.Telegram.Token, cfg.Telegram.Debug, store, cfg.Webhook.BaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize Telegram bot")
	}

	// Shared delivery path: both ingresses format and dispatch through it
	svc := relay.NewService(notifier.NewTelegramNotifier(bot.GetAPI()))

	// HTTP ingress
	httpIngress := server.New(store, svc, cfg.Relay.ResolveTimeout, cfg.Relay.DeliverTimeout)
	httpServer := &http.Server{
		Addr:    cfg.ServerAddress(),
		Handler: httpIngress.Router(),
	}

	go func() {
		logger.Info().Str("address", cfg.ServerAddress()).Msg("Starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// gRPC ingress for the co-located ingestion service
	rpcServer := rpc.NewServer(svc, cfg.Relay.DeliverTimeout)
	if err := rpcServer.Start(cfg.GRPCAddress()); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start gRPC server")
	}

	// Start Telegram bot
	bot.Start()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info().Msg("Shutting down...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown error")
	}

	rpcServer.Stop()
	bot.Stop()

	logger.Info().Msg("Shutdown complete")
}
