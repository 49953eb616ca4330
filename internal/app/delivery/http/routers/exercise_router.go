package routers

import (
	"fmt"
	"mindfit-service/internal/app/delivery/http/middlewares"
	"mindfit-service/internal/app/services/core/exercises"
	"mindfit-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachExerciseRoutes(router chi.Router, m *middlewares.Middlewares, controller *exercises.ExerciseController) {
	router.Route(fmt.Sprintf("/%s", constvars.ResourceExercises), func(r chi.Router) {
		r.Get("/", controller.ListExercises)
		r.Get("/{exercise_id}", controller.FindExerciseByID)

		r.With(m.Authenticate).Post("/", controller.CreateExercise)
		r.With(m.Authenticate).Put("/{exercise_id}", controller.UpdateExerciseByID)
		r.With(m.Authenticate).Delete("/{exercise_id}", controller.DeleteExerciseByID)
	})
}
