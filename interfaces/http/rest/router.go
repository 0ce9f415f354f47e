// Package rest wires the HTTP surface: routing, middleware ordering, and
// the health and metrics endpoints.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"orders-backend/infrastructure/observability"
	"orders-backend/interfaces/http/rest/handlers"
	"orders-backend/interfaces/http/rest/middleware"
	"orders-backend/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	orderHandler *handlers.OrderHandler
	validator    *auth.JWTValidator
	collector    *observability.Collector
	serviceName  string
	logger       *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	orderHandler *handlers.OrderHandler,
	validator *auth.JWTValidator,
	collector *observability.Collector,
	serviceName string,
	logger *zap.Logger,
) *Router {
	return &Router{
		orderHandler: orderHandler,
		validator:    validator,
		collector:    collector,
		serviceName:  serviceName,
		logger:       logger,
	}
}

// Setup configures all routes and middleware. Ordering matters: the tracing
// middleware opens the server span, Authenticate resolves the principal, and
// TraceTagging runs after both so it can annotate the span with the masked
// identity.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(rt.logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Use(observability.TracingMiddleware(rt.serviceName))
	router.Use(observability.MetricsMiddleware(rt.collector))
	router.Use(middleware.Authenticate(rt.validator, rt.logger))
	router.Use(middleware.TraceTagging())

	router.Get("/health", rt.healthCheck)
	router.Method(http.MethodGet, "/metrics", rt.collector.Handler())

	router.Route("/api/v1/orders", func(r chi.Router) {
		r.Use(middleware.RequireAuth())
		r.Post("/", rt.orderHandler.CreateOrder)
		r.Get("/{orderNumber}", rt.orderHandler.GetOrder)
		r.Post("/{orderNumber}/pay", rt.orderHandler.MarkOrderPaid)
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
