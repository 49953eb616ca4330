package contracts

import (
	"context"
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/dto/requests"
	"mindfit-service/internal/pkg/dto/responses"
)

type MuscleRepository interface {
	CreateMuscle(ctx context.Context, muscle *models.Muscle) (string, error)
	FindAll(ctx context.Context) ([]models.Muscle, error)
	FindByID(ctx context.Context, muscleID string) (*models.Muscle, error)
	FindByName(ctx context.Context, name string) (*models.Muscle, error)
	UpdateMuscle(ctx context.Context, muscle *models.Muscle) error
	DeleteByID(ctx context.Context, muscleID string) error
}

type MuscleUsecase interface {
	CreateMuscle(ctx context.Context, request *requests.CreateMuscle) (*responses.Muscle, error)
	ListMuscles(ctx context.Context) ([]responses.Muscle, error)
	FindMuscleByID(ctx context.Context, muscleID string) (*responses.Muscle, error)
	UpdateMuscle(ctx context.Context, request *requests.UpdateMuscle) (*responses.Muscle, error)
	DeleteMuscleByID(ctx context.Context, muscleID string) error
}
