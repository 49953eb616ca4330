package routers

import (
	"fmt"
	"mindfit-service/internal/app/config"
	"mindfit-service/internal/app/delivery/http/middlewares"
	"mindfit-service/internal/app/services/core/auth"
	"mindfit-service/internal/app/services/core/emergencycontacts"
	"mindfit-service/internal/app/services/core/exercises"
	"mindfit-service/internal/app/services/core/helplines"
	"mindfit-service/internal/app/services/core/moods"
	"mindfit-service/internal/app/services/core/muscles"
	"mindfit-service/internal/app/services/core/penpals"
	"mindfit-service/internal/app/services/core/users"
	"mindfit-service/internal/app/services/core/workouts"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Auth             *auth.AuthController
	User             *users.UserController
	Muscle           *muscles.MuscleController
	Exercise         *exercises.ExerciseController
	Workout          *workouts.WorkoutController
	Mood             *moods.MoodController
	EmergencyContact *emergencycontacts.EmergencyContactController
	Helpline         *helplines.HelplineController
	Penpal           *penpals.PenpalController
}

func SetupRoutes(
	router *chi.Mux,
	m *middlewares.Middlewares,
	internalConfig *config.InternalConfig,
	controllers *Controllers,
) {
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, 1*time.Minute))
	router.Use(m.RequestID)
	router.Use(m.Logging)
	router.Use(m.RecoverPanic)

	authLimiter := middlewares.NewRateLimiter(
		internalConfig.App.AuthRequestsPerSecond,
		internalConfig.App.AuthRequestsBurst,
	)

	basePath := fmt.Sprintf("/%s/%s", internalConfig.App.EndpointPrefix, internalConfig.App.Version)
	router.Route(basePath, func(r chi.Router) {
		attachAuthRoutes(r, m, authLimiter, controllers.Auth)
		attachUserRoutes(r, m, controllers.User)
		attachMuscleRoutes(r, m, controllers.Muscle)
		attachExerciseRoutes(r, m, controllers.Exercise)
		attachWorkoutRoutes(r, m, controllers.Workout)
		attachMoodRoutes(r, m, controllers.Mood)
		attachEmergencyContactRoutes(r, m, controllers.EmergencyContact)
		attachHelplineRoutes(r, m, controllers.Helpline)
		attachPenpalRoutes(r, m, controllers.Penpal)
	})

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
}
