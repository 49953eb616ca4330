package contracts

import (
	"context"
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/dto/requests"
	"mindfit-service/internal/pkg/dto/responses"
)

type ExerciseRepository interface {
	CreateExercise(ctx context.Context, exercise *models.Exercise) (string, error)
	FindAll(ctx context.Context, muscleID string) ([]models.Exercise, error)
	FindByID(ctx context.Context, exerciseID string) (*models.Exercise, error)
	UpdateExercise(ctx context.Context, exercise *models.Exercise) error
	DeleteByID(ctx context.Context, exerciseID string) error
}

type ExerciseUsecase interface {
	CreateExercise(ctx context.Context, request *requests.CreateExercise) (*responses.Exercise, error)
	ListExercises(ctx context.Context, request *requests.ListExercises) ([]responses.Exercise, error)
	FindExerciseByID(ctx context.Context, exerciseID string) (*responses.Exercise, error)
	UpdateExercise(ctx context.Context, request *requests.UpdateExercise) (*responses.Exercise, error)
	DeleteExerciseByID(ctx context.Context, exerciseID string) error
}
