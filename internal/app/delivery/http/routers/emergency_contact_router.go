package routers

import (
	"fmt"
	"mindfit-service/internal/app/delivery/http/middlewares"
	"mindfit-service/internal/app/services/core/emergencycontacts"
	"mindfit-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachEmergencyContactRoutes(router chi.Router, m *middlewares.Middlewares, controller *emergencycontacts.EmergencyContactController) {
	router.Route(fmt.Sprintf("/%s", constvars.ResourceEmergencyContacts), func(r chi.Router) {
		r.Use(m.Authenticate)
		r.Post("/", controller.CreateContact)
		r.Get("/", controller.ListContacts)
		r.Get("/{contact_id}", controller.FindContactByID)
		r.Put("/{contact_id}", controller.UpdateContactByID)
		r.Delete("/{contact_id}", controller.DeleteContactByID)
	})
}
