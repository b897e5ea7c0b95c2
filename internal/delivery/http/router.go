package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "eventregistration/docs"
	"eventregistration/internal/delivery/http/controllers"
	"eventregistration/internal/delivery/http/middleware"
	"eventregistration/internal/metrics"
)

// RouterConfig carries the controllers and settings the router mounts.
type RouterConfig struct {
	Logger             *slog.Logger
	AdminToken         string
	CORSAllowedOrigins []string
	EventController    *controllers.EventController
	AttendeeController *controllers.AttendeeController
	AdminController    *controllers.AdminController
	HealthController   *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes wrapped in the
// request id, logging, metrics and CORS middleware, outermost first.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /events", cfg.EventController.ListEvents)
	mux.HandleFunc("POST /events", cfg.EventController.CreateEvent)
	mux.HandleFunc("GET /event/{eventID}", cfg.EventController.GetEvent)
	mux.HandleFunc("DELETE /event/{eventID}", cfg.EventController.DeleteEvent)

	// Users and registrations
	mux.HandleFunc("GET /users/{email}", cfg.AttendeeController.ListUserEvents)
	mux.HandleFunc("GET /users/{email}/count", cfg.AttendeeController.CountAttendances)
	mux.HandleFunc("POST /register/{email}/{eventID}", cfg.AttendeeController.Register)
	mux.HandleFunc("DELETE /register/{email}/{eventID}", cfg.AttendeeController.Unregister)

	// Admin
	requireAdmin := middleware.RequireAdminToken(cfg.AdminToken, cfg.Logger)
	mux.HandleFunc("GET /admin/{token}/{eventID}", requireAdmin(cfg.AdminController.ListAttendees))

	// Operations
	mux.HandleFunc("GET /health", cfg.HealthController.Health)
	mux.Handle("GET /metrics", metrics.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = metrics.HTTPMiddleware(handler)
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	handler = middleware.RequestID(handler)
	return handler
}
