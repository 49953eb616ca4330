package routers

import (
	"fmt"
	"mindfit-service/internal/app/delivery/http/middlewares"
	"mindfit-service/internal/app/services/core/workouts"
	"mindfit-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachWorkoutRoutes(router chi.Router, m *middlewares.Middlewares, controller *workouts.WorkoutController) {
	router.Route(fmt.Sprintf("/%s", constvars.ResourceWorkouts), func(r chi.Router) {
		r.Use(m.Authenticate)
		r.Post("/", controller.CreateWorkout)
		r.Get("/", controller.ListWorkouts)
		r.Get("/{workout_id}", controller.FindWorkoutByID)
		r.Put("/{workout_id}", controller.UpdateWorkoutByID)
		r.Delete("/{workout_id}", controller.DeleteWorkoutByID)
	})
}
