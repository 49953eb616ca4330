package middlewares

import (
	"context"
	"mindfit-service/internal/app/config"
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/constvars"
	"mindfit-service/internal/pkg/exceptions"
	"mindfit-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	sessions map[string]string
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return nil, nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	data, ok := f.sessions[sessionID]
	if !ok {
		return "", exceptions.ErrTokenInvalid(nil)
	}
	return data, nil
}

func newTestMiddlewares(sessions map[string]string) *Middlewares {
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = "test-secret"
	internalConfig.JWT.ExpTimeInHour = 1

	return NewMiddlewares(zap.NewNop(), &fakeSessionService{sessions: sessions}, internalConfig)
}

func TestAuthenticate(t *testing.T) {
	sessionID := utils.GenerateSessionID()
	m := newTestMiddlewares(map[string]string{
		sessionID: `{"session_id":"` + sessionID + `","user_id":"abc","username":"janedoe"}`,
	})

	var capturedSessionID, capturedSessionData string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedSessionID, _ = r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
		capturedSessionData, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid Token", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT(sessionID, "test-secret", 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()

		m.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, sessionID, capturedSessionID)
		assert.Contains(t, capturedSessionData, "janedoe")
	})

	t.Run("Missing Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		m.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Not A Bearer Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		m.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Unknown Session", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("no-such-session", "test-secret", 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()

		m.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Forged Token", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT(sessionID, "attacker-secret", 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()

		m.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
