package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Thomaslgrn/pdftotexte/internal/config"
	"github.com/Thomaslgrn/pdftotexte/internal/domain"
	"github.com/Thomaslgrn/pdftotexte/internal/handler"
)

const shutdownTimeout = 10 * time.Second

func serve(cfg domain.Config) error {
	// Wiring
	container, err := config.NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	// Handlers
	extractHandler := handler.NewExtractHandler(
		container.Extractor,
		cfg.GetMultipartMaxMemory(),
		container.Logger,
	)
	requestLogger := handler.NewRequestLogger(container.Logger)

	// Router
	router := handler.NewRouter(extractHandler, requestLogger.Middleware)

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.GetHost(), cfg.GetServerPort()),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		container.Logger.Info("Server listening",
			"address", server.Addr,
			"engine", container.Engine.Name(),
			"version", version,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			container.Logger.Error("Server failed to start", err)
		}
		return err
	case <-quit:
	}

	container.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.Logger.Info("Server exited")
	return nil
}
