package http

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"autoevents/internal/delivery/http/controllers"
	"autoevents/internal/delivery/http/middleware"
	"autoevents/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Write endpoints require a Bearer token; listing, calendar, and share
// endpoints are public. Auth endpoints are rate limited per client IP.
func NewRouter(
	eventController *controllers.EventController,
	authController *controllers.AuthController,
	verifier domain.TokenVerifier,
	authLimiter *middleware.RateLimiter,
	db *sql.DB,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	// Events
	mux.HandleFunc("POST /events", requireAuth(eventController.CreateEvent))
	mux.HandleFunc("PUT /events", requireAuth(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /events", requireAuth(eventController.DeleteEvent))
	mux.HandleFunc("GET /events", eventController.GetEvents)
	mux.HandleFunc("GET /events/me", requireAuth(eventController.ListMyEvents))
	mux.HandleFunc("GET /dashboard/stats", requireAuth(eventController.DashboardStats))

	// Calendar and sharing
	mux.HandleFunc("GET /events/{eventID}/calendar.ics", eventController.DownloadCalendar)
	mux.HandleFunc("GET /events/{eventID}/calendar/google", eventController.GoogleCalendarLink)
	mux.HandleFunc("GET /events/{eventID}/share", eventController.ShareLinks)

	// Auth
	mux.HandleFunc("POST /auth/signup", authLimiter.Limit(authController.SignUp))
	mux.HandleFunc("POST /auth/login", authLimiter.Limit(authController.Login))

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Observability
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
