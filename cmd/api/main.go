package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"
	"github.com/liwang258/v2-periphery/internal/config"
	"github.com/liwang258/v2-periphery/internal/eth"
	"github.com/liwang258/v2-periphery/internal/handler"
	"github.com/liwang258/v2-periphery/internal/logging"
	"github.com/liwang258/v2-periphery/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	app := fiber.New()
	logger := logging.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ethereumClient, err := eth.Dial(ctx, cfg.RPCEndpoint)
	if err != nil {
		return fmt.Errorf("failed to connect to Ethereum node: %w", err)
	}

	quoteService := service.NewQuoteService(logger, *ethereumClient)
	quoteHandler := handler.NewQuoteHandler(logger, quoteService, cfg.Factory)
	app.Get("/pair", quoteHandler.Pair())
	app.Get("/reserves", quoteHandler.Reserves())
	app.Get("/amounts-out", quoteHandler.AmountsOut())
	app.Get("/amounts-in", quoteHandler.AmountsIn())

	logger.Info("starting quote server", "addr", cfg.Addr, "factory", cfg.Factory.Hex())

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			_ = app.Shutdown()
			ethereumClient.Close()
			return fmt.Errorf("server error: %w", err)
		}
		ethereumClient.Close()
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_ = app.Shutdown()

	ethereumClient.Close()

	<-shutdownCtx.Done()
	return nil
}
