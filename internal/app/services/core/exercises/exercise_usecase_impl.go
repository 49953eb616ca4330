package exercises

import (
	"context"
	"mindfit-service/internal/app/contracts"
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/dto/requests"
	"mindfit-service/internal/pkg/dto/responses"
	"mindfit-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type exerciseUsecase struct {
	ExerciseRepository contracts.ExerciseRepository
	MuscleRepository   contracts.MuscleRepository
	Log                *zap.Logger
}

var (
	exerciseUsecaseInstance contracts.ExerciseUsecase
	onceExerciseUsecase     sync.Once
)

func NewExerciseUsecase(
	exerciseRepository contracts.ExerciseRepository,
	muscleRepository contracts.MuscleRepository,
	logger *zap.Logger,
) contracts.ExerciseUsecase {
	onceExerciseUsecase.Do(func() {
		exerciseUsecaseInstance = &exerciseUsecase{
			ExerciseRepository: exerciseRepository,
			MuscleRepository:   muscleRepository,
			Log:                logger,
		}
	})
	return exerciseUsecaseInstance
}

func (uc *exerciseUsecase) CreateExercise(ctx context.Context, request *requests.CreateExercise) (*responses.Exercise, error) {
	if err := uc.ensureMusclesExist(ctx, request.MuscleIDs); err != nil {
		return nil, err
	}

	now := time.Now()
	exercise := &models.Exercise{
		Name:        request.Name,
		Description: request.Description,
		MuscleIDs:   request.MuscleIDs,
		Difficulty:  request.Difficulty,
		Equipment:   request.Equipment,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	exerciseID, err := uc.ExerciseRepository.CreateExercise(ctx, exercise)
	if err != nil {
		return nil, err
	}

	exercise.ID = exerciseID
	return mapExerciseToResponse(exercise), nil
}

func (uc *exerciseUsecase) ListExercises(ctx context.Context, request *requests.ListExercises) ([]responses.Exercise, error) {
	exercises, err := uc.ExerciseRepository.FindAll(ctx, request.MuscleID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Exercise, 0, len(exercises))
	for i := range exercises {
		response = append(response, *mapExerciseToResponse(&exercises[i]))
	}
	return response, nil
}

func (uc *exerciseUsecase) FindExerciseByID(ctx context.Context, exerciseID string) (*responses.Exercise, error) {
	exercise, err := uc.ExerciseRepository.FindByID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		return nil, exceptions.ErrExerciseNotFound(nil)
	}
	return mapExerciseToResponse(exercise), nil
}

func (uc *exerciseUsecase) UpdateExercise(ctx context.Context, request *requests.UpdateExercise) (*responses.Exercise, error) {
	existing, err := uc.ExerciseRepository.FindByID(ctx, request.ExerciseID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrExerciseNotFound(nil)
	}

	if err := uc.ensureMusclesExist(ctx, request.MuscleIDs); err != nil {
		return nil, err
	}

	existing.Name = request.Name
	existing.Description = request.Description
	existing.MuscleIDs = request.MuscleIDs
	existing.Difficulty = request.Difficulty
	existing.Equipment = request.Equipment
	existing.UpdatedAt = time.Now()

	if err := uc.ExerciseRepository.UpdateExercise(ctx, existing); err != nil {
		return nil, err
	}
	return mapExerciseToResponse(existing), nil
}

func (uc *exerciseUsecase) DeleteExerciseByID(ctx context.Context, exerciseID string) error {
	existing, err := uc.ExerciseRepository.FindByID(ctx, exerciseID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrExerciseNotFound(nil)
	}
	return uc.ExerciseRepository.DeleteByID(ctx, exerciseID)
}

func (uc *exerciseUsecase) ensureMusclesExist(ctx context.Context, muscleIDs []string) error {
	for _, muscleID := range muscleIDs {
		muscle, err := uc.MuscleRepository.FindByID(ctx, muscleID)
		if err != nil {
			return err
		}
		if muscle == nil {
			return exceptions.ErrMuscleNotFound(nil)
		}
	}
	return nil
}

func mapExerciseToResponse(exercise *models.Exercise) *responses.Exercise {
	return &responses.Exercise{
		ExerciseID:  exercise.ID,
		Name:        exercise.Name,
		Description: exercise.Description,
		MuscleIDs:   exercise.MuscleIDs,
		Difficulty:  exercise.Difficulty,
		Equipment:   exercise.Equipment,
	}
}
