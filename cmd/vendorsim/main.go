// Command vendorsim runs one vendor backend simulator process. The same
// binary is launched N times, once per vendor, distinguished only by the
// --name flag (or VENDOR_NAME env var) that becomes that vendor's display
// name and the source of its deterministic vendor_id slug.
//
// Lifecycle mirrors the teacher's cmd/api/main.go:
//  1. Load configuration from env/flags
//  2. Build the gRPC server and register the vendor backend service
//  3. Start gRPC and HTTP (health) listeners
//  4. Wait for SIGINT/SIGTERM
//  5. Gracefully drain and exit
package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc/reflection"

	"github.com/quoteforge/platform/internal/config"
	"github.com/quoteforge/platform/internal/grpcserver"
	"github.com/quoteforge/platform/internal/logging"
	quotingv1 "github.com/quoteforge/platform/internal/proto/quoting/v1"
	"github.com/quoteforge/platform/internal/vendor"
)

func main() {
	var nameFlag string
	flag.StringVar(&nameFlag, "name", "", "vendor display name (overrides VENDOR_NAME)")
	flag.Parse()

	name := nameFlag
	if name == "" {
		name = config.String("VENDOR_NAME", "Acme Supply")
	}

	grpcPort := config.String("GRPC_PORT", "9100")
	httpPort := config.String("HTTP_PORT", "9101")
	logLevel := config.String("LOG_LEVEL", "info")
	environment := config.String("ENVIRONMENT", "development")

	logger := logging.New("vendorsim", logLevel, environment)
	logger = logger.With().Str("vendor", name).Logger()
	logger.Info().Str("grpc_port", grpcPort).Str("http_port", httpPort).Msg("starting vendor simulator")

	server := grpcserver.New(logger)
	quotingv1.RegisterVendorBackendServer(server, vendor.NewServer(name, logger))

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	server.GracefulStop()
	logger.Info().Msg("grpc server stopped")

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown failed")
	}
	logger.Info().Msg("shutdown complete")
}
