package edge

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	checkoutv1 "github.com/quoteforge/platform/internal/proto/checkout/v1"
	quotingv1 "github.com/quoteforge/platform/internal/proto/quoting/v1"
)

// Config configures the Edge Bridge's HTTP surface.
type Config struct {
	RateLimitQPS     float64
	RateLimitEnabled bool
}

// Server is the Edge Bridge: it exposes four HTTP routes over the Pricing
// Aggregator and Checkout Engine RPC clients.
type Server struct {
	pricing  quotingv1.VendorPricingClient
	checkout checkoutv1.CheckoutClient
	log      zerolog.Logger
	cfg      Config
}

// New builds a Server over already-dialled upstream connections.
func New(pricingConn, checkoutConn *grpc.ClientConn, cfg Config, logger zerolog.Logger) *Server {
	return &Server{
		pricing:  quotingv1.NewVendorPricingClient(pricingConn),
		checkout: checkoutv1.NewCheckoutClient(checkoutConn),
		log:      logger.With().Str("component", "edge_bridge").Logger(),
		cfg:      cfg,
	}
}

// Handler builds the full HTTP handler: routes wrapped in the spec's
// cross-cutting chain (request-id -> rate limit -> CORS -> access log).
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/api/search", s.handleSearch).Methods(http.MethodGet)
	router.HandleFunc("/api/quote", s.handleQuote).Methods(http.MethodGet)
	router.HandleFunc("/api/checkout", s.handleCheckoutStart).Methods(http.MethodPost)
	router.HandleFunc("/api/checkout/{id}/stream", s.handleCheckoutStream).Methods(http.MethodGet)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	limiter := newLimiter(s.cfg.RateLimitQPS)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Idempotency-Key", requestIDHeader},
	})

	chain := alice.New(
		requestIDMiddleware,
		rateLimitMiddleware(limiter, s.cfg.RateLimitEnabled),
		corsHandler.Handler,
		accessLogMiddleware(s.log),
	)

	return chain.Then(router)
}
