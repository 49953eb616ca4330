package utils

import (
	"github.com/google/uuid"
)

func GenerateSessionID() string {
	return uuid.New().String()
}

func GenerateRequestID() string {
	return uuid.New().String()
}
