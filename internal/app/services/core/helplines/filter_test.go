package helplines

import (
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alwaysOnMethod(value string) *models.ContactMethod {
	return &models.ContactMethod{Value: value}
}

func weekdayOnlyMethod(value string) *models.ContactMethod {
	return &models.ContactMethod{
		Value: value,
		Availability: []models.AvailabilityWindow{
			{DayType: constvars.DayTypeWeekday, OpensAt: "09:00", ClosesAt: "17:00"},
		},
	}
}

func TestFilterOpenNow_TrimsUnavailableMethods(t *testing.T) {
	helpline := models.Helpline{
		Name:        "City Crisis Line",
		Description: "Free and confidential",
		Contact: models.Contact{
			Voice: alwaysOnMethod("+6280011122233"),
			Text:  weekdayOnlyMethod("+6280011122234"),
		},
	}

	filtered := filterOpenNow([]models.Helpline{helpline}, weekendCtx(600))

	require.Len(t, filtered, 1)
	assert.Equal(t, "City Crisis Line", filtered[0].Name)
	assert.Equal(t, "Free and confidential", filtered[0].Description)
	assert.NotNil(t, filtered[0].Contact.Voice)
	assert.Nil(t, filtered[0].Contact.Text, "weekday-only method must be stripped on weekends")
	assert.Nil(t, filtered[0].Contact.Email)
	assert.Nil(t, filtered[0].Contact.Webchat)
}

func TestFilterOpenNow_DropsHelplinesWithNoReachableMethod(t *testing.T) {
	helplines := []models.Helpline{
		{Name: "Always Open", Contact: models.Contact{Webchat: alwaysOnMethod("chat.example.org")}},
		{Name: "Office Hours Only", Contact: models.Contact{Voice: weekdayOnlyMethod("+6280011122234")}},
		{Name: "Email Anytime", Contact: models.Contact{Email: alwaysOnMethod("support@example.org")}},
	}

	filtered := filterOpenNow(helplines, weekendCtx(600))

	require.Len(t, filtered, 2)
	assert.Equal(t, "Always Open", filtered[0].Name)
	assert.Equal(t, "Email Anytime", filtered[1].Name)
}

func TestFilterOpenNow_PreservesInputOrder(t *testing.T) {
	helplines := []models.Helpline{
		{Name: "Charlie", Contact: models.Contact{Voice: alwaysOnMethod("1")}},
		{Name: "Alpha", Contact: models.Contact{Voice: alwaysOnMethod("2")}},
		{Name: "Bravo", Contact: models.Contact{Voice: alwaysOnMethod("3")}},
	}

	filtered := filterOpenNow(helplines, weekdayCtx(600))

	require.Len(t, filtered, 3)
	assert.Equal(t, "Charlie", filtered[0].Name)
	assert.Equal(t, "Alpha", filtered[1].Name)
	assert.Equal(t, "Bravo", filtered[2].Name)
}

func TestFilterOpenNow_DoesNotMutateInput(t *testing.T) {
	helplines := []models.Helpline{
		{Name: "Mixed", Contact: models.Contact{
			Voice: alwaysOnMethod("+6280011122233"),
			Text:  weekdayOnlyMethod("+6280011122234"),
		}},
	}

	_ = filterOpenNow(helplines, weekendCtx(600))

	assert.NotNil(t, helplines[0].Contact.Text, "input slice must keep its methods")
}

func TestFilterOpenNow_Idempotent(t *testing.T) {
	helplines := []models.Helpline{
		{Name: "Always Open", Contact: models.Contact{Webchat: alwaysOnMethod("chat.example.org")}},
		{Name: "Office Hours Only", Contact: models.Contact{Voice: weekdayOnlyMethod("+6280011122234")}},
	}
	ctx := weekendCtx(600)

	once := filterOpenNow(helplines, ctx)
	twice := filterOpenNow(once, ctx)

	assert.Equal(t, once, twice)
}

func TestListHelplines_OpenNowFalseIsIdentity(t *testing.T) {
	helplines := []models.Helpline{
		{Name: "Office Hours Only", Contact: models.Contact{Voice: weekdayOnlyMethod("+6280011122234")}},
		{Name: "Broken Schedule", Contact: models.Contact{Voice: &models.ContactMethod{
			Value: "+6280011122235",
			Availability: []models.AvailabilityWindow{
				{DayType: constvars.DayTypeWeekday, OpensAt: "25:99", ClosesAt: "17:00"},
			},
		}}},
	}

	// Without the filter nothing is evaluated, so even malformed windows
	// pass through untouched.
	result := listHelplines(helplines, false, weekendCtx(600))
	assert.Equal(t, helplines, result)
}

func TestListHelplines_OpenNowTrueFilters(t *testing.T) {
	helplines := []models.Helpline{
		{Name: "Always Open", Contact: models.Contact{Voice: alwaysOnMethod("+6280011122233")}},
		{Name: "Office Hours Only", Contact: models.Contact{Voice: weekdayOnlyMethod("+6280011122234")}},
	}

	result := listHelplines(helplines, true, weekendCtx(600))

	require.Len(t, result, 1)
	assert.Equal(t, "Always Open", result[0].Name)
}
