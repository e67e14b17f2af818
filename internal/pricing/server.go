package pricing

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"github.com/quoteforge/platform/internal/pricing/metrics"
	"github.com/quoteforge/platform/internal/pricing/pool"
	quotingv1 "github.com/quoteforge/platform/internal/proto/quoting/v1"
	"github.com/quoteforge/platform/internal/vendorset"
)

// Deps bundles everything Register needs to wire the Pricing Aggregator
// onto a grpc.Server and to start its background controller.
type Deps struct {
	Endpoints    []vendorset.Endpoint
	Pool         *pool.Pool
	Latency      *metrics.LatencyWindow
	Recent       *metrics.RecentWindow
	Logger       zerolog.Logger
}

// Register builds the Aggregator, registers it on server, and starts the
// adaptive pool's autoscaler controller bound to ctx.
func Register(ctx context.Context, server *grpc.Server, deps Deps) *Aggregator {
	agg := New(deps.Endpoints, deps.Pool, deps.Latency, deps.Recent, deps.Logger)
	quotingv1.RegisterVendorPricingServer(server, agg)
	go deps.Pool.RunController(ctx)
	return agg
}
