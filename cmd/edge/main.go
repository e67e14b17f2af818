// Command edge runs the Edge Bridge: the HTTP surface browsers talk to,
// translating into the Pricing Aggregator and Checkout Engine RPCs.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/quoteforge/platform/internal/config"
	"github.com/quoteforge/platform/internal/edge"
	"github.com/quoteforge/platform/internal/logging"
)

func main() {
	port := config.String("PORT", "8080")
	pricingAddr := config.String("PRICING_ADDR", "localhost:9000")
	checkoutAddr := config.String("CHECKOUT_ADDR", "localhost:9200")
	logLevel := config.String("LOG_LEVEL", "info")
	environment := config.String("ENVIRONMENT", "development")
	rateQPS := config.Float64("RATE_LIMIT_QPS", 50)
	rateEnabled := config.Bool("RATE_LIMIT_ENABLED", true)

	logger := logging.New("edge", logLevel, environment)

	pricingConn, err := grpc.NewClient(pricingAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to dial pricing aggregator")
	}
	defer pricingConn.Close()

	checkoutConn, err := grpc.NewClient(checkoutAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to dial checkout engine")
	}
	defer checkoutConn.Close()

	server := edge.New(pricingConn, checkoutConn, edge.Config{
		RateLimitQPS:     rateQPS,
		RateLimitEnabled: rateEnabled,
	}, logger)

	httpServer := &http.Server{
		Addr:    ":" + port,
		Handler: server.Handler(),
	}

	go func() {
		logger.Info().Str("port", port).Msg("edge bridge listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown failed")
	}
	logger.Info().Msg("shutdown complete")
}
