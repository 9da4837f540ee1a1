package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// GracefulShutdown waits for SIGINT/SIGTERM and drains srv plus any side
// servers (pprof) before signalling done.
func GracefulShutdown(srv *http.Server, logger *zap.Logger, done chan<- bool, extra ...*http.Server) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info("Shutting down gracefully, press Ctrl+C again to force")

	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	for _, s := range extra {
		if s == nil {
			continue
		}
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Side server forced to shutdown", zap.String("addr", s.Addr), zap.Error(err))
		}
	}

	logger.Info("Server exiting")
	done <- true
}
