package routes

import (
	"net/http"

	"github.com/nordlicht/nordlicht/internal/app"
	"github.com/nordlicht/nordlicht/internal/handler"
	"github.com/nordlicht/nordlicht/internal/middleware"
)

func SetupRoutes(a *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(a.AuthService)
	goal := handler.NewGoalHandler(a.GoalService)
	email := handler.NewEmailHandler(a.NotificationService, a.AIService, a.MailService, a.Cfg.AppName)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// Goals (session-scoped)
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /api/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("GET /api/goals/{id}", middleware.RequireAuth(goal.GetByID))
	mux.HandleFunc("DELETE /api/goals/{id}", middleware.RequireAuth(goal.Delete))

	// Notification trigger. Unauthenticated by contract: the endpoint loads
	// the goal by id with no ownership check.
	mux.HandleFunc("POST /api/send-email", email.SendGoalEmail)

	// Development-only probes for the external services
	if a.Cfg.IsDevelopment() {
		mux.HandleFunc("GET /api/test-ai", email.TestAI)
		mux.HandleFunc("GET /api/test-mail", email.TestMail)
	}

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.AuthMiddleware(a.AuthService, a.UserRepository),
	)
}
