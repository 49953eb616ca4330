package routers

import (
	"fmt"
	"mindfit-service/internal/app/delivery/http/middlewares"
	"mindfit-service/internal/app/services/core/auth"
	"mindfit-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, m *middlewares.Middlewares, limiter *middlewares.RateLimiter, controller *auth.AuthController) {
	router.Route(fmt.Sprintf("/%s", constvars.ResourceAuth), func(r chi.Router) {
		// Credential endpoints carry their own token-bucket budget on top
		// of the global per-IP limit.
		r.With(m.RateLimit(limiter)).Post("/register", controller.RegisterUser)
		r.With(m.RateLimit(limiter)).Post("/login", controller.LoginUser)
		r.With(m.Authenticate).Post("/logout", controller.LogoutUser)
	})
}
