package routers

import (
	"fmt"
	"mindfit-service/internal/app/delivery/http/middlewares"
	"mindfit-service/internal/app/services/core/penpals"
	"mindfit-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPenpalRoutes(router chi.Router, m *middlewares.Middlewares, controller *penpals.PenpalController) {
	router.Route(fmt.Sprintf("/%s", constvars.ResourcePenpals), func(r chi.Router) {
		r.Use(m.Authenticate)

		r.Post("/requests", controller.SendRequest)
		r.Get("/requests", controller.ListIncomingRequests)
		r.Post("/requests/{request_id}/respond", controller.RespondToRequest)

		r.Get("/friends", controller.ListFriends)
		r.Delete("/friends/{username}", controller.RemoveFriend)

		r.Get("/friends/{username}/messages", controller.ListConversation)
		r.Post("/friends/{username}/messages", controller.SendMessage)
	})
}
