package webframework

import (
	"clinic-service/internal/app/config"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func NewHTTPServer(internalConfig *config.InternalConfig, router *chi.Mux) *http.Server {
	return &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Serve runs server until SIGINT or SIGTERM, then drains in-flight requests and
// calls onShutdown with the remaining shutdown budget.
func Serve(server *http.Server, internalConfig *config.InternalConfig, log *zap.Logger, onShutdown func(ctx context.Context) error) {
	go func() {
		log.Info("Server started", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if onShutdown != nil {
		err = onShutdown(shutdownCtx)
		if err != nil {
			log.Error("Failed to release resources", zap.Error(err))
		}
	}

	log.Info("Server exiting")
}
