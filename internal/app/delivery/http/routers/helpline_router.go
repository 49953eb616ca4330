package routers

import (
	"fmt"
	"mindfit-service/internal/app/delivery/http/middlewares"
	"mindfit-service/internal/app/services/core/helplines"
	"mindfit-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

// Helpline reads are public so someone in crisis never hits a login wall.
// Catalog maintenance requires a session.
func attachHelplineRoutes(router chi.Router, m *middlewares.Middlewares, controller *helplines.HelplineController) {
	router.Route(fmt.Sprintf("/%s", constvars.ResourceHelplines), func(r chi.Router) {
		r.Get("/", controller.ListHelplines)
		r.Get("/{helpline_id}", controller.FindHelplineByID)

		r.With(m.Authenticate).Post("/", controller.CreateHelpline)
		r.With(m.Authenticate).Put("/{helpline_id}", controller.UpdateHelplineByID)
		r.With(m.Authenticate).Delete("/{helpline_id}", controller.DeleteHelplineByID)
	})
}
