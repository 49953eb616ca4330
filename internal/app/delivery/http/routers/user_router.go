package routers

import (
	"fmt"
	"mindfit-service/internal/app/delivery/http/middlewares"
	"mindfit-service/internal/app/services/core/users"
	"mindfit-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, m *middlewares.Middlewares, controller *users.UserController) {
	router.Route(fmt.Sprintf("/%s", constvars.ResourceUsers), func(r chi.Router) {
		r.Use(m.Authenticate)
		r.Get("/me", controller.GetProfile)
		r.Put("/me", controller.UpdateProfile)
		r.Delete("/me", controller.DeactivateAccount)
	})
}
