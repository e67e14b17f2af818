// Command checkout runs the Checkout Engine: the fixed SAGA workflow over
// an in-memory OrderStatus map and InventoryLedger.
package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc/reflection"

	"github.com/quoteforge/platform/internal/checkout"
	"github.com/quoteforge/platform/internal/config"
	"github.com/quoteforge/platform/internal/grpcserver"
	"github.com/quoteforge/platform/internal/logging"
	checkoutv1 "github.com/quoteforge/platform/internal/proto/checkout/v1"
)

// seedInventory is the mock inventory seed every process starts with.
// Treated as an external collaborator the core merely consumes; this is
// a fixed, generous default rather than a configurable catalog.
var seedInventory = map[string]int32{
	"sku-laptop-1":    50,
	"sku-phone-1":     100,
	"sku-tablet-1":    75,
	"sku-headphone-1": 200,
}

func main() {
	grpcPort := config.String("PORT", "9200")
	httpPort := config.String("HTTP_PORT", "9201")
	logLevel := config.String("LOG_LEVEL", "info")
	environment := config.String("ENVIRONMENT", "development")

	logger := logging.New("checkout", logLevel, environment)

	engine := checkout.New(seedInventory, logger)

	server := grpcserver.New(logger)
	checkoutv1.RegisterCheckoutServer(server, engine)

	if environment == "development" {
		reflection.Register(server)
	}

	go func() {
		listener, err := net.Listen("tcp", ":"+grpcPort)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create grpc listener")
		}
		logger.Info().Str("port", grpcPort).Msg("grpc server listening")
		if err := server.Serve(listener); err != nil {
			logger.Fatal().Err(err).Msg("grpc server failed")
		}
	}()

	httpServer := &http.Server{
		Addr: ":" + httpPort,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(grpcserver.Health())
		}),
	}
	go func() {
		logger.Info().Str("port", httpPort).Msg("http server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")

	server.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown failed")
	}
	logger.Info().Msg("shutdown complete")
}
