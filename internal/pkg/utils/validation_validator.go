package utils

import (
	"mindfit-service/internal/pkg/constvars"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("clock_time", validateClockTime)
	validate.RegisterValidation("mood_scale", validateMoodScale)
	validate.RegisterValidation("not_future_date", validateNotFutureDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phoneNumber := fl.Field().String()
	re := regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
	return re.MatchString(phoneNumber)
}

// validateClockTime accepts HH:MM wall-clock strings, hour 0-23 minute 0-59.
func validateClockTime(fl validator.FieldLevel) bool {
	parts := strings.Split(fl.Field().String(), ":")
	if len(parts) != 2 {
		return false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return false
	}
	return true
}

func validateMoodScale(fl validator.FieldLevel) bool {
	scale := fl.Field().Int()
	return scale >= 1 && scale <= 10
}

func validateNotFutureDate(fl validator.FieldLevel) bool {
	parsed, err := time.Parse("2006-01-02", fl.Field().String())
	if err != nil {
		return false
	}
	return !parsed.After(time.Now())
}
