package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/orgball2608/inline-bot-layout/internal/app"
	"github.com/orgball2608/inline-bot-layout/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	log := logger.New(logger.Opts{Env: os.Getenv("APP_ENV")})

	application := fx.New(
		fx.Logger(log),
		app.Module,
	)

	// Start the application
	if err := application.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	// Gracefully shutdown the application
	if err := application.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}
}
