package routers

import (
	"fmt"
	"mindfit-service/internal/app/delivery/http/middlewares"
	"mindfit-service/internal/app/services/core/muscles"
	"mindfit-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMuscleRoutes(router chi.Router, m *middlewares.Middlewares, controller *muscles.MuscleController) {
	router.Route(fmt.Sprintf("/%s", constvars.ResourceMuscles), func(r chi.Router) {
		r.Get("/", controller.ListMuscles)
		r.Get("/{muscle_id}", controller.FindMuscleByID)

		r.With(m.Authenticate).Post("/", controller.CreateMuscle)
		r.With(m.Authenticate).Put("/{muscle_id}", controller.UpdateMuscleByID)
		r.With(m.Authenticate).Delete("/{muscle_id}", controller.DeleteMuscleByID)
	})
}
