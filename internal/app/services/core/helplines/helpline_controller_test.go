package helplines

import (
	"context"
	"encoding/json"
	"mindfit-service/internal/pkg/dto/requests"
	"mindfit-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeHelplineUsecase struct {
	lastOpenNow bool
	listCalls   int
}

func (f *fakeHelplineUsecase) CreateHelpline(ctx context.Context, request *requests.HelplinePayload) (*responses.Helpline, error) {
	return nil, nil
}

func (f *fakeHelplineUsecase) ListHelplines(ctx context.Context, openNow bool, now time.Time) ([]responses.Helpline, error) {
	f.lastOpenNow = openNow
	f.listCalls++
	return []responses.Helpline{{HelplineID: "abc123", Name: "City Crisis Line"}}, nil
}

func (f *fakeHelplineUsecase) FindHelplineByID(ctx context.Context, helplineID string) (*responses.Helpline, error) {
	return nil, nil
}

func (f *fakeHelplineUsecase) UpdateHelpline(ctx context.Context, request *requests.HelplinePayload) (*responses.Helpline, error) {
	return nil, nil
}

func (f *fakeHelplineUsecase) DeleteHelplineByID(ctx context.Context, helplineID string) error {
	return nil
}

func TestListHelplinesHandler_OpenNowQuery(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		expected bool
	}{
		{"No Query Param", "/helplines", false},
		{"Literal True", "/helplines?openNow=true", true},
		{"Literal False", "/helplines?openNow=false", false},
		{"Capitalized True", "/helplines?openNow=True", false},
		{"Numeric One", "/helplines?openNow=1", false},
		{"Empty Value", "/helplines?openNow=", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			usecase := &fakeHelplineUsecase{}
			controller := NewHelplineController(zap.NewNop(), usecase)

			req := httptest.NewRequest(http.MethodGet, c.query, nil)
			rec := httptest.NewRecorder()

			controller.ListHelplines(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, 1, usecase.listCalls)
			assert.Equal(t, c.expected, usecase.lastOpenNow)
		})
	}
}

func TestListHelplinesHandler_ResponseEnvelope(t *testing.T) {
	controller := NewHelplineController(zap.NewNop(), &fakeHelplineUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/helplines", nil)
	rec := httptest.NewRecorder()

	controller.ListHelplines(rec, req)

	var envelope struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Data    []responses.Helpline `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.Message)
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "City Crisis Line", envelope.Data[0].Name)
}
