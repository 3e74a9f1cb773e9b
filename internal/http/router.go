package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/joykbiswas/cupcake-backend/internal/auth"
	"github.com/joykbiswas/cupcake-backend/internal/metrics"
)

// Server owns the HTTP surface: one handler per resource, the token
// manager for gated routes, and the request metrics.
type Server struct {
	tokens   *TokenHandler
	cakes    *CakeHandler
	users    *UserHandler
	carts    *CartHandler
	payments *PaymentHandler
	stats    *StatsHandler

	auth           *auth.Manager
	metrics        *metrics.ServerMetrics
	allowedOrigins []string
	requestTimeout time.Duration
}

func NewServer(
	tokens *TokenHandler,
	cakes *CakeHandler,
	users *UserHandler,
	carts *CartHandler,
	payments *PaymentHandler,
	stats *StatsHandler,
	authManager *auth.Manager,
	serverMetrics *metrics.ServerMetrics,
	allowedOrigins []string,
	requestTimeout time.Duration,
) *Server {
	return &Server{
		tokens:         tokens,
		cakes:          cakes,
		users:          users,
		carts:          carts,
		payments:       payments,
		stats:          stats,
		auth:           authManager,
		metrics:        serverMetrics,
		allowedOrigins: allowedOrigins,
		requestTimeout: requestTimeout,
	}
}

// Router wires every route through the policy table in the auth package.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(s.requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(s.metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Cake making management server is running"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	r.Post("/jwt", s.gate("POST /jwt", s.tokens.Issue))

	r.Get("/users", s.gate("GET /users", s.users.List))
	r.Get("/all-users", s.gate("GET /all-users", s.users.List))
	r.Post("/users", s.gate("POST /users", s.users.Create))

	r.Post("/cake", s.gate("POST /cake", s.cakes.Create))
	r.Get("/cake", s.gate("GET /cake", s.cakes.List))
	r.Get("/cake/{id}", s.gate("GET /cake/{id}", s.cakes.Get))
	r.Patch("/cake/{id}", s.gate("PATCH /cake/{id}", s.cakes.Update))
	r.Delete("/cake/{id}", s.gate("DELETE /cake/{id}", s.cakes.Delete))

	r.Post("/cart", s.gate("POST /cart", s.carts.Add))
	r.Get("/cart", s.gate("GET /cart", s.carts.List))
	r.Delete("/cart/{id}", s.gate("DELETE /cart/{id}", s.carts.Delete))

	r.Post("/create-payment-int", s.gate("POST /create-payment-int", s.payments.CreateIntent))
	r.Post("/payments", s.gate("POST /payments", s.payments.Record))
	r.Get("/payments/{email}", s.gate("GET /payments/{email}", s.payments.History))
	r.Get("/all-payments", s.gate("GET /all-payments", s.payments.ListAll))

	r.Get("/order-stats", s.gate("GET /order-stats", s.stats.OrderStats))
	r.Get("/admin-stats", s.gate("GET /admin-stats", s.stats.AdminStats))

	// Trace instrumentation wraps the whole mux so incoming traceparent
	// headers propagate into handler contexts.
	return otelhttp.NewHandler(r, "cakeshop-api")
}

// gate wraps a handler with the middleware its declared policy demands.
// PolicyTokenSelf routes still do their claim/target comparison in the
// handler; the table only decides whether a token is required at all.
func (s *Server) gate(route string, h http.HandlerFunc) http.HandlerFunc {
	switch auth.PolicyFor(route) {
	case auth.PolicyToken, auth.PolicyTokenSelf:
		return s.auth.RequireToken(h).ServeHTTP
	default:
		return h
	}
}
