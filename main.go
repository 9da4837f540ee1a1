package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/pkg/config"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/pkg/logger"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.ParseLevel(cfg.Observability.LogLevel),
		zap.String("service", cfg.Observability.ServiceName)); err != nil {
		return err
	}
	defer logger.Log.Sync()
	l := logger.Log

	otelShutdown, err := server.InitObservability(cfg.Observability, l)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			l.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	srv, err := server.New(context.Background(), cfg, l)
	if err != nil {
		return err
	}
	defer srv.Close()

	router := server.SetupRouter(srv.Dependencies(), cfg.Observability.ServiceName, l)
	server.SetupAssets(router)
	srv.SetRouter(router)

	pprofServer := server.StartPprofServer(cfg.Observability.PprofAddr, l)

	httpServer := srv.HTTPServer()

	done := make(chan bool, 1)
	go server.GracefulShutdown(httpServer, l, done, pprofServer)

	l.Info("Server starting", zap.String("port", cfg.ServerPort), zap.String("store", string(cfg.Store)))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.Error("Server error", zap.Error(err))
		return err
	}

	<-done
	l.Info("Graceful shutdown complete")

	return nil
}
