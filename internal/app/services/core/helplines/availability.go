package helplines

import (
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/constvars"
	"strconv"
	"strings"
	"time"
)

// EvaluationContext carries the injected wall-clock reading a filter run is
// evaluated against. It is computed once per request, never from a global
// clock inside the evaluator, so tests can supply arbitrary instants.
type EvaluationContext struct {
	Now                  time.Time
	DayType              string
	MinutesSinceMidnight int
}

func NewEvaluationContext(now time.Time) EvaluationContext {
	dayType := constvars.DayTypeWeekday
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		dayType = constvars.DayTypeWeekend
	}

	return EvaluationContext{
		Now:                  now,
		DayType:              dayType,
		MinutesSinceMidnight: now.Hour()*60 + now.Minute(),
	}
}

// parseClockMinutes converts a HH:MM string into minutes since midnight.
// Hour must be in [0,23] and minute in [0,59]; anything else is rejected.
func parseClockMinutes(clock string) (int, bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}

// isAvailable reports whether a contact method is reachable at the context
// instant. A method without availability windows is treated as a 24/7
// service. A window that fails to parse never grants availability: a
// mis-configured helpline must stay out of the listing rather than crash it.
func isAvailable(method *models.ContactMethod, ctx EvaluationContext) bool {
	if method == nil || method.Value == "" {
		return false
	}

	if len(method.Availability) == 0 {
		return true
	}

	var window *models.AvailabilityWindow
	for i := range method.Availability {
		if method.Availability[i].DayType == ctx.DayType {
			// First matching window wins; duplicate day types are a
			// configuration error and are not merged.
			window = &method.Availability[i]
			break
		}
	}
	if window == nil {
		return false
	}

	openMinutes, ok := parseClockMinutes(window.OpensAt)
	if !ok {
		return false
	}
	closeMinutes, ok := parseClockMinutes(window.ClosesAt)
	if !ok {
		return false
	}

	m := ctx.MinutesSinceMidnight
	if closeMinutes > openMinutes {
		// Same-day window, inclusive on both bounds.
		return openMinutes <= m && m <= closeMinutes
	}

	// Overnight window, e.g. opens 22:00 closes 06:00.
	return m >= openMinutes || m <= closeMinutes
}

// filterOpenNow strips unavailable contact methods from each helpline and
// drops helplines left with no reachable method. Input order is preserved and
// the input slice is never mutated.
func filterOpenNow(helplines []models.Helpline, ctx EvaluationContext) []models.Helpline {
	filtered := make([]models.Helpline, 0, len(helplines))

	for _, helpline := range helplines {
		trimmed := models.Contact{}
		methodCount := 0

		if isAvailable(helpline.Contact.Voice, ctx) {
			trimmed.Voice = helpline.Contact.Voice
			methodCount++
		}
		if isAvailable(helpline.Contact.Text, ctx) {
			trimmed.Text = helpline.Contact.Text
			methodCount++
		}
		if isAvailable(helpline.Contact.Email, ctx) {
			trimmed.Email = helpline.Contact.Email
			methodCount++
		}
		if isAvailable(helpline.Contact.Webchat, ctx) {
			trimmed.Webchat = helpline.Contact.Webchat
			methodCount++
		}

		if methodCount == 0 {
			continue
		}

		helpline.Contact = trimmed
		filtered = append(filtered, helpline)
	}

	return filtered
}

// listHelplines returns the input unchanged when openNow is false, skipping
// availability evaluation entirely to match "show everything" semantics.
func listHelplines(helplines []models.Helpline, openNow bool, ctx EvaluationContext) []models.Helpline {
	if !openNow {
		return helplines
	}
	return filterOpenNow(helplines, ctx)
}
