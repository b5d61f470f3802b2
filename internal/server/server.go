package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"facemetry/internal/config"
	"facemetry/pkg/log"
)

// Run serves the analysis API until the process receives SIGINT or
// SIGTERM, then drains in-flight requests.
func Run(cfg *config.Config, h *Handler) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: NewRouter(h),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info(log.Fields{"addr": cfg.Addr}, "listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	stop()
	log.Info(nil, "shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
