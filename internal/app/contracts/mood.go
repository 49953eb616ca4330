package contracts

import (
	"context"
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/dto/requests"
	"mindfit-service/internal/pkg/dto/responses"
	"time"
)

type MoodRepository interface {
	CreateMood(ctx context.Context, mood *models.Mood) (string, error)
	FindAllByUserID(ctx context.Context, userID string, from, to *time.Time) ([]models.Mood, error)
	FindByIDAndUserID(ctx context.Context, moodID, userID string) (*models.Mood, error)
	UpdateMood(ctx context.Context, mood *models.Mood) error
	DeleteByIDAndUserID(ctx context.Context, moodID, userID string) error
}

type MoodUsecase interface {
	CreateMood(ctx context.Context, sessionData string, request *requests.CreateMood) (*responses.Mood, error)
	ListMoods(ctx context.Context, sessionData string, request *requests.ListMoods) ([]responses.Mood, error)
	FindMoodByID(ctx context.Context, sessionData, moodID string) (*responses.Mood, error)
	UpdateMood(ctx context.Context, sessionData string, request *requests.UpdateMood) (*responses.Mood, error)
	DeleteMoodByID(ctx context.Context, sessionData, moodID string) error
}
