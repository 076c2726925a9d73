package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/eskrenkovic/sales-catalog-go/internal/config"
	"github.com/eskrenkovic/sales-catalog-go/internal/server"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) > 1 {
		rootPath := os.Args[1]
		if rootPath == "" {
			log.Fatal("root directory path is empty")
		}

		if err := godotenv.Load(path.Join(rootPath, "config.env")); err != nil {
			log.Fatal(err)
		}
	}

	config, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := config.Logger
	defer func() {
		_ = logger.Sync()
	}()

	srv, err := server.NewHTTPServer(config)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("server stopped unexpectedly", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
		return
	}

	logger.Info("server stopped")
}
