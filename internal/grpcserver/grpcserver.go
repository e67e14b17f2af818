// Package grpcserver builds the grpc.Server every process in this platform
// starts with: a recovery interceptor so a panicking handler never takes the
// process down, and a logging interceptor that records method/duration/err
// for every call. Grounded on the teacher's createGRPCServer.
package grpcserver

import (
	"context"
	"time"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"
)

// New builds a grpc.Server with recovery + logging unary interceptors, a
// server-streaming logging interceptor, and the keepalive parameters the
// teacher's API server uses.
func New(logger zerolog.Logger, extra ...grpc.ServerOption) *grpc.Server {
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandler(func(p interface{}) error {
			logger.Error().Interface("panic", p).Msg("recovered from panic in grpc handler")
			return status.Errorf(codes.Internal, "internal server error")
		}),
	}

	loggingUnary := func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Info().
			Str("method", info.FullMethod).
			Dur("duration_ms", time.Since(start)).
			Err(err).
			Msg("grpc request completed")
		return resp, err
	}

	loggingStream := func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		start := time.Now()
		err := handler(srv, ss)
		logger.Info().
			Str("method", info.FullMethod).
			Dur("duration_ms", time.Since(start)).
			Err(err).
			Msg("grpc stream completed")
		return err
	}

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(grpc_middleware.ChainUnaryServer(
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
			loggingUnary,
		)),
		grpc.ChainStreamInterceptor(grpc_middleware.ChainStreamServer(
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
			loggingStream,
		)),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     15 * time.Minute,
			MaxConnectionAge:      30 * time.Minute,
			MaxConnectionAgeGrace: 5 * time.Minute,
			Time:                  5 * time.Minute,
			Timeout:               1 * time.Minute,
		}),
		grpc.MaxRecvMsgSize(4 * 1024 * 1024),
		grpc.MaxSendMsgSize(4 * 1024 * 1024),
	}
	opts = append(opts, extra...)

	return grpc.NewServer(opts...)
}

// Health returns the response body the vendorsim and checkout processes
// write from the HTTP listener they run alongside their gRPC listener.
func Health() []byte {
	return []byte("ok")
}
