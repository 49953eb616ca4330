package middlewares

import (
	"mindfit-service/internal/pkg/constvars"
	"mindfit-service/internal/pkg/exceptions"
	"mindfit-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// RecoverPanic turns handler panics into a plain 500 JSON response so a
// single bad request cannot bring the server down.
func (m *Middlewares) RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				m.Log.Error("panic recovered",
					zap.Any("panic", recovered),
					zap.String(constvars.LoggingMethodKey, r.Method),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithoutError(
					constvars.StatusInternalServerError,
					constvars.ErrClientSomethingWrongWithApplication,
					"Recovered from panic in HTTP handler",
				))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
