// Package api exposes the HTTP handlers for the fitness tracker.
package api

import (
	"net/http"
	"time"

	"example.com/fittrack/internal/auth"
	"example.com/fittrack/internal/domain"
	"example.com/fittrack/internal/session"
)

// Handler coordinates HTTP requests with the repositories and the auth
// service. Handlers are thin: optional authentication, parameter validation,
// a single store operation, a response.
type Handler struct {
	auth          *auth.Service
	middleware    *auth.Middleware
	users         domain.UserRepository
	exercises     domain.ExerciseRepository
	plans         domain.WorkoutPlanRepository
	planExercises domain.PlanExerciseRepository
	progress      domain.WorkoutProgressRepository
	nutrition     domain.NutritionRepository
	sessionTTL    time.Duration
	cookieOpts    session.CookieOptions
}

// Deps carries everything a Handler needs.
type Deps struct {
	Auth          *auth.Service
	Users         domain.UserRepository
	Exercises     domain.ExerciseRepository
	Plans         domain.WorkoutPlanRepository
	PlanExercises domain.PlanExerciseRepository
	Progress      domain.WorkoutProgressRepository
	Nutrition     domain.NutritionRepository
	SessionTTL    time.Duration
	CookieSecure  bool
}

// NewHandler builds a Handler.
func NewHandler(deps Deps) *Handler {
	return &Handler{
		auth:          deps.Auth,
		middleware:    auth.NewMiddleware(deps.Auth),
		users:         deps.Users,
		exercises:     deps.Exercises,
		plans:         deps.Plans,
		planExercises: deps.PlanExercises,
		progress:      deps.Progress,
		nutrition:     deps.Nutrition,
		sessionTTL:    deps.SessionTTL,
		cookieOpts:    session.CookieOptions{Secure: deps.CookieSecure},
	}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", healthz)

	mux.HandleFunc("POST /auth/register", h.register)
	mux.HandleFunc("POST /auth/login", h.login)
	mux.HandleFunc("POST /auth/logout", h.logout)
	mux.Handle("GET /auth/me", h.protected(h.me))
	mux.HandleFunc("GET /auth/user/{user_id}", h.getUser)
	mux.HandleFunc("DELETE /auth/user/{user_id}", h.deleteUser)

	mux.HandleFunc("POST /workouts/exercises", h.createExercise)
	mux.HandleFunc("GET /workouts/exercises", h.listExercises)
	mux.HandleFunc("GET /workouts/exercises/{id}", h.getExercise)
	mux.HandleFunc("PUT /workouts/exercises/{id}", h.updateExercise)
	mux.HandleFunc("DELETE /workouts/exercises/{id}", h.deleteExercise)
	mux.HandleFunc("GET /workouts/exercises/category/{category}", h.listExercisesByCategory)
	mux.HandleFunc("GET /workouts/exercises/difficulty/{difficulty}", h.listExercisesByDifficulty)

	mux.HandleFunc("POST /workouts/plans", h.createPlan)
	mux.HandleFunc("GET /workouts/plans", h.listPlans)
	mux.HandleFunc("GET /workouts/plans/{id}", h.getPlan)
	mux.HandleFunc("PUT /workouts/plans/{id}", h.updatePlan)
	mux.HandleFunc("DELETE /workouts/plans/{id}", h.deletePlan)

	// "difficulty/{level}" and "{plan_id}/exercises" are ambiguous ServeMux
	// patterns (both match "difficulty/exercises"), so the two-segment GET is
	// registered once and dispatched here.
	mux.HandleFunc("GET /workouts/plans/{plan_id}/{sub}", h.planSubroute)

	mux.HandleFunc("POST /workouts/plans/{plan_id}/exercises", h.addPlanExercise)
	mux.HandleFunc("PUT /workouts/plans/{plan_id}/exercises/{id}", h.updatePlanExercise)
	mux.HandleFunc("DELETE /workouts/plans/{plan_id}/exercises/{id}", h.removePlanExercise)

	mux.Handle("POST /workouts/progress", h.protected(h.logProgress))
	mux.Handle("GET /workouts/progress", h.protected(h.listProgress))
	mux.Handle("GET /workouts/progress/{id}", h.protected(h.getProgress))
	mux.Handle("PUT /workouts/progress/{id}", h.protected(h.updateProgress))
	mux.Handle("DELETE /workouts/progress/{id}", h.protected(h.deleteProgress))

	mux.Handle("POST /nutrition/logs", h.protected(h.createNutritionLog))
	mux.Handle("GET /nutrition/logs", h.protected(h.listNutritionLogs))
	mux.Handle("GET /nutrition/logs/{id}", h.protected(h.getNutritionLog))
	mux.Handle("PUT /nutrition/logs/{id}", h.protected(h.updateNutritionLog))
	mux.Handle("DELETE /nutrition/logs/{id}", h.protected(h.deleteNutritionLog))
	mux.Handle("GET /nutrition/logs/date/{date}", h.protected(h.listNutritionLogsByDate))
	mux.Handle("DELETE /nutrition/logs/date/{date}", h.protected(h.deleteNutritionLogsByDate))
	mux.Handle("GET /nutrition/summary", h.protected(h.nutritionSummary))
}

// protected gates a handler behind session authentication.
func (h *Handler) protected(fn http.HandlerFunc) http.Handler {
	return h.middleware.RequireAuth(fn)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
