// cmd/discord/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"clima-bot/internal/bootstrap"
	"clima-bot/internal/config"
	"clima-bot/internal/discord"
	"clima-bot/internal/logger"
	"clima-bot/internal/version"
	"clima-bot/pkg/cmd"
)

func main() {
	log := logger.Log
	log.Infof("Starting %v bot...", version.AppName)

	cfg, err := config.Load(config.Path())
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	if err := logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File}); err != nil {
		log.WithError(err).Fatal("Failed to configure logging")
	}

	dispatcher, err := bootstrap.Setup(cmd.DefaultRegistry, cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to register commands")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bot := discord.NewBot(cfg, dispatcher)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Infof("Received signal %s, shutting down...", s)
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.WithError(err).Fatal("Discord bot error")
		}
	}

	log.Info("Discord bot exited cleanly")
}
