package contracts

import (
	"context"
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/dto/requests"
	"mindfit-service/internal/pkg/dto/responses"
)

type WorkoutRepository interface {
	CreateWorkout(ctx context.Context, workout *models.Workout) (string, error)
	FindAllByUserID(ctx context.Context, userID string) ([]models.Workout, error)
	FindByIDAndUserID(ctx context.Context, workoutID, userID string) (*models.Workout, error)
	UpdateWorkout(ctx context.Context, workout *models.Workout) error
	DeleteByIDAndUserID(ctx context.Context, workoutID, userID string) error
}

type WorkoutUsecase interface {
	CreateWorkout(ctx context.Context, sessionData string, request *requests.CreateWorkout) (*responses.Workout, error)
	ListWorkouts(ctx context.Context, sessionData string) ([]responses.Workout, error)
	FindWorkoutByID(ctx context.Context, sessionData, workoutID string) (*responses.Workout, error)
	UpdateWorkout(ctx context.Context, sessionData string, request *requests.UpdateWorkout) (*responses.Workout, error)
	DeleteWorkoutByID(ctx context.Context, sessionData, workoutID string) error
}
