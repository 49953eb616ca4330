package utils

import (
	"mindfit-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	request := &requests.RegisterUser{
		Username: "  JaneDoe  ",
		Email:    " Jane@Example.ORG ",
	}

	SanitizeRegisterUserRequest(request)

	assert.Equal(t, "janedoe", request.Username)
	assert.Equal(t, "jane@example.org", request.Email)
}

func TestSanitizeCreateMoodRequest(t *testing.T) {
	request := &requests.CreateMood{
		Note: "  feeling ok  ",
		Tags: []string{" work ", "sleep "},
	}

	SanitizeCreateMoodRequest(request)

	assert.Equal(t, "feeling ok", request.Note)
	assert.Equal(t, []string{"work", "sleep"}, request.Tags)
}

func TestSanitizeHelplinePayload(t *testing.T) {
	request := &requests.HelplinePayload{
		Name:        "  City Crisis Line  ",
		Description: " Free support ",
	}

	SanitizeHelplinePayload(request)

	assert.Equal(t, "City Crisis Line", request.Name)
	assert.Equal(t, "Free support", request.Description)
}

func TestSanitizePenpalUsername(t *testing.T) {
	assert.Equal(t, "janedoe", SanitizePenpalUsername("  JaneDoe "))
}
