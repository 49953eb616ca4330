package utils

import (
	"mindfit-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	output := make([]string, 0, len(input))
	for _, value := range input {
		output = append(output, strings.TrimSpace(value))
	}
	return output
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Username = strings.ToLower(strings.TrimSpace(input.Username))
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Username = strings.ToLower(strings.TrimSpace(input.Username))
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.Fullname = strings.TrimSpace(input.Fullname)
	input.Bio = strings.TrimSpace(input.Bio)
}

func SanitizeCreateMoodRequest(input *requests.CreateMood) {
	input.Note = strings.TrimSpace(input.Note)
	input.Tags = cleanWhiteSpaceFromEachStringOfAnArray(input.Tags)
}

func SanitizeUpdateMoodRequest(input *requests.UpdateMood) {
	input.Note = strings.TrimSpace(input.Note)
	input.Tags = cleanWhiteSpaceFromEachStringOfAnArray(input.Tags)
}

func SanitizeHelplinePayload(input *requests.HelplinePayload) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
}

func SanitizePenpalUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
