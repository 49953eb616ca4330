package utils

import (
	"mindfit-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_RegisterUser(t *testing.T) {
	t.Run("Valid Request", func(t *testing.T) {
		request := &requests.RegisterUser{
			Username:       "janedoe",
			Email:          "jane@example.org",
			Password:       "Sup3rSecret!",
			RetypePassword: "Sup3rSecret!",
		}
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("Weak Password", func(t *testing.T) {
		request := &requests.RegisterUser{
			Username:       "janedoe",
			Email:          "jane@example.org",
			Password:       "weakpass",
			RetypePassword: "weakpass",
		}
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Invalid Email", func(t *testing.T) {
		request := &requests.RegisterUser{
			Username:       "janedoe",
			Email:          "not-an-email",
			Password:       "Sup3rSecret!",
			RetypePassword: "Sup3rSecret!",
		}
		assert.Error(t, ValidateStruct(request))
	})
}

func TestValidateStruct_HelplineAvailabilityWindow(t *testing.T) {
	validWindow := func() requests.HelplinePayload {
		return requests.HelplinePayload{
			Name:        "City Crisis Line",
			Description: "Free and confidential support",
			Contact: requests.ContactPayload{
				Voice: &requests.ContactMethodPayload{
					Value: "+6280011122233",
					Availability: []requests.AvailabilityWindowPayload{
						{DayType: "weekday", OpensAt: "09:00", ClosesAt: "17:00"},
					},
				},
			},
		}
	}

	t.Run("Valid Window", func(t *testing.T) {
		request := validWindow()
		assert.NoError(t, ValidateStruct(&request))
	})

	t.Run("Invalid Day Type", func(t *testing.T) {
		request := validWindow()
		request.Contact.Voice.Availability[0].DayType = "holiday"
		assert.Error(t, ValidateStruct(&request))
	})

	t.Run("Invalid Clock Time", func(t *testing.T) {
		request := validWindow()
		request.Contact.Voice.Availability[0].ClosesAt = "25:99"
		assert.Error(t, ValidateStruct(&request))
	})
}

func TestValidateStruct_MoodScale(t *testing.T) {
	t.Run("In Range", func(t *testing.T) {
		request := &requests.CreateMood{Scale: 5}
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("Above Range", func(t *testing.T) {
		request := &requests.CreateMood{Scale: 11}
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Below Range", func(t *testing.T) {
		request := &requests.CreateMood{Scale: 0}
		assert.Error(t, ValidateStruct(request))
	})
}
