package helplines

import (
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func weekdayCtx(minutes int) EvaluationContext {
	// 2024-06-12 is a Wednesday.
	return EvaluationContext{
		Now:                  time.Date(2024, 6, 12, minutes/60, minutes%60, 0, 0, time.UTC),
		DayType:              constvars.DayTypeWeekday,
		MinutesSinceMidnight: minutes,
	}
}

func weekendCtx(minutes int) EvaluationContext {
	// 2024-06-15 is a Saturday.
	return EvaluationContext{
		Now:                  time.Date(2024, 6, 15, minutes/60, minutes%60, 0, 0, time.UTC),
		DayType:              constvars.DayTypeWeekend,
		MinutesSinceMidnight: minutes,
	}
}

func officeHoursMethod() *models.ContactMethod {
	return &models.ContactMethod{
		Value: "+6281234567890",
		Availability: []models.AvailabilityWindow{
			{DayType: constvars.DayTypeWeekday, OpensAt: "09:00", ClosesAt: "17:00"},
		},
	}
}

func TestNewEvaluationContext(t *testing.T) {
	t.Run("Weekday Derivation", func(t *testing.T) {
		ctx := NewEvaluationContext(time.Date(2024, 6, 12, 14, 30, 0, 0, time.UTC))
		assert.Equal(t, constvars.DayTypeWeekday, ctx.DayType)
		assert.Equal(t, 14*60+30, ctx.MinutesSinceMidnight)
	})

	t.Run("Weekend Derivation", func(t *testing.T) {
		saturday := NewEvaluationContext(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
		sunday := NewEvaluationContext(time.Date(2024, 6, 16, 23, 59, 0, 0, time.UTC))
		assert.Equal(t, constvars.DayTypeWeekend, saturday.DayType)
		assert.Equal(t, constvars.DayTypeWeekend, sunday.DayType)
		assert.Equal(t, 0, saturday.MinutesSinceMidnight)
		assert.Equal(t, 23*60+59, sunday.MinutesSinceMidnight)
	})
}

func TestIsAvailable_NoWindowsMeansAlwaysOn(t *testing.T) {
	method := &models.ContactMethod{Value: "help@example.org"}

	for hour := 0; hour < 24; hour++ {
		assert.True(t, isAvailable(method, weekdayCtx(hour*60)), "hour %d weekday", hour)
		assert.True(t, isAvailable(method, weekendCtx(hour*60)), "hour %d weekend", hour)
	}
}

func TestIsAvailable_MissingMethodOrValue(t *testing.T) {
	assert.False(t, isAvailable(nil, weekdayCtx(600)))
	assert.False(t, isAvailable(&models.ContactMethod{}, weekdayCtx(600)))

	// Even an always-on schedule never surfaces a method with no destination.
	assert.False(t, isAvailable(&models.ContactMethod{Value: ""}, weekendCtx(600)))
}

func TestIsAvailable_SameDayWindowBounds(t *testing.T) {
	method := officeHoursMethod()

	t.Run("Inclusive At Both Bounds", func(t *testing.T) {
		assert.True(t, isAvailable(method, weekdayCtx(540)), "09:00 opening minute")
		assert.True(t, isAvailable(method, weekdayCtx(1020)), "17:00 closing minute")
	})

	t.Run("Outside The Window", func(t *testing.T) {
		assert.False(t, isAvailable(method, weekdayCtx(538)), "08:58")
		assert.False(t, isAvailable(method, weekdayCtx(1022)), "17:02")
	})
}

func TestIsAvailable_NoWindowForDayType(t *testing.T) {
	method := officeHoursMethod()

	for hour := 0; hour < 24; hour++ {
		assert.False(t, isAvailable(method, weekendCtx(hour*60)), "hour %d", hour)
	}
}

func TestIsAvailable_OvernightWindow(t *testing.T) {
	method := &models.ContactMethod{
		Value: "chat.example.org",
		Availability: []models.AvailabilityWindow{
			{DayType: constvars.DayTypeWeekend, OpensAt: "22:00", ClosesAt: "06:00"},
		},
	}

	assert.True(t, isAvailable(method, weekendCtx(1410)), "23:30")
	assert.True(t, isAvailable(method, weekendCtx(300)), "05:00")
	assert.False(t, isAvailable(method, weekendCtx(720)), "12:00")
}

func TestIsAvailable_MalformedWindowFailsClosed(t *testing.T) {
	t.Run("Out Of Range Components", func(t *testing.T) {
		method := &models.ContactMethod{
			Value: "+6281234567890",
			Availability: []models.AvailabilityWindow{
				{DayType: constvars.DayTypeWeekday, OpensAt: "09:00", ClosesAt: "25:99"},
			},
		}
		assert.NotPanics(t, func() {
			assert.False(t, isAvailable(method, weekdayCtx(600)))
		})
	})

	t.Run("Non Numeric Components", func(t *testing.T) {
		method := &models.ContactMethod{
			Value: "+6281234567890",
			Availability: []models.AvailabilityWindow{
				{DayType: constvars.DayTypeWeekday, OpensAt: "nine", ClosesAt: "17:00"},
			},
		}
		assert.False(t, isAvailable(method, weekdayCtx(600)))
	})

	t.Run("Missing Separator", func(t *testing.T) {
		method := &models.ContactMethod{
			Value: "+6281234567890",
			Availability: []models.AvailabilityWindow{
				{DayType: constvars.DayTypeWeekday, OpensAt: "0900", ClosesAt: "17:00"},
			},
		}
		assert.False(t, isAvailable(method, weekdayCtx(600)))
	})
}

func TestIsAvailable_FirstMatchingWindowWins(t *testing.T) {
	method := &models.ContactMethod{
		Value: "+6281234567890",
		Availability: []models.AvailabilityWindow{
			{DayType: constvars.DayTypeWeekday, OpensAt: "09:00", ClosesAt: "12:00"},
			{DayType: constvars.DayTypeWeekday, OpensAt: "13:00", ClosesAt: "17:00"},
		},
	}

	// Duplicate day types are malformed configuration; the second window is
	// never consulted.
	assert.True(t, isAvailable(method, weekdayCtx(600)))
	assert.False(t, isAvailable(method, weekdayCtx(840)), "14:00 falls only in the ignored window")
}

func TestParseClockMinutes(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"23:59", 1439, true},
		{"9:30", 570, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"-1:00", 0, false},
		{"25:99", 0, false},
		{"", 0, false},
		{"12", 0, false},
		{"ab:cd", 0, false},
	}

	for _, c := range cases {
		minutes, ok := parseClockMinutes(c.input)
		assert.Equal(t, c.ok, ok, "input %q", c.input)
		if c.ok {
			assert.Equal(t, c.minutes, minutes, "input %q", c.input)
		}
	}
}
