package routers

import (
	"fmt"
	"mindfit-service/internal/app/delivery/http/middlewares"
	"mindfit-service/internal/app/services/core/moods"
	"mindfit-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMoodRoutes(router chi.Router, m *middlewares.Middlewares, controller *moods.MoodController) {
	router.Route(fmt.Sprintf("/%s", constvars.ResourceMoods), func(r chi.Router) {
		r.Use(m.Authenticate)
		r.Post("/", controller.CreateMood)
		r.Get("/", controller.ListMoods)
		r.Get("/{mood_id}", controller.FindMoodByID)
		r.Put("/{mood_id}", controller.UpdateMoodByID)
		r.Delete("/{mood_id}", controller.DeleteMoodByID)
	})
}
