package workouts

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

type workoutUsecase struct {
	WorkoutRepository  contracts.WorkoutRepository
	ExerciseRepository contracts.ExerciseRepository
	SessionService     contracts.SessionService
	Log                *zap.Logger
}

var (
	workoutUsecaseInstance contracts.WorkoutUsecase
	onceWorkoutUsecase     sync.Once
)

func NewWorkoutUsecase(
	workoutRepository contracts.WorkoutRepository,
	exerciseRepository contracts.ExerciseRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.WorkoutUsecase {
	onceWorkoutUsecase.Do(func() {
		workoutUsecaseInstance = &workoutUsecase{
			WorkoutRepository:  workoutRepository,
			ExerciseRepository: exerciseRepository,
			SessionService:     sessionService,
			Log:                logger,
		}
	})
	return workoutUsecaseInstance
}

func (uc *workoutUsecase) CreateWorkout(ctx context.Context, sessionData string, request *requests.CreateWorkout) (*responses.Workout, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	if err := uc.ensureExercisesExist(ctx, request.Entries); err != nil {
		return nil, err
	}

	now := time.Now()
	workout := &models.Workout{
		UserID:  session.UserID,
		Name:    request.Name,
		Notes:   request.Notes,
		Entries: mapEntryRequestsToModels(request.Entries),
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	workoutID, err := uc.WorkoutRepository.CreateWorkout(ctx, workout)
	if err != nil {
		return nil, err
	}

	workout.ID = workoutID
	return mapWorkoutToResponse(workout), nil
}

func (uc *workoutUsecase) ListWorkouts(ctx context.Context, sessionData string) ([]responses.Workout, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	workouts, err := uc.WorkoutRepository.FindAllByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Workout, 0, len(workouts))
	for i := range workouts {
		response = append(response, *mapWorkoutToResponse(&workouts[i]))
	}
	return response, nil
}

func (uc *workoutUsecase) FindWorkoutByID(ctx context.Context, sessionData, workoutID string) (*responses.Workout, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	workout, err := uc.WorkoutRepository.FindByIDAndUserID(ctx, workoutID, session.UserID)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return nil, exceptions.ErrWorkoutNotFound(nil)
	}
	return mapWorkoutToResponse(workout), nil
}

func (uc *workoutUsecase) UpdateWorkout(ctx context.Context, sessionData string, request *requests.UpdateWorkout) (*responses.Workout, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	existing, err := uc.WorkoutRepository.FindByIDAndUserID(ctx, request.WorkoutID, session.UserID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrWorkoutNotFound(nil)
	}

	if err := uc.ensureExercisesExist(ctx, request.Entries); err != nil {
		return nil, err
	}

	existing.Name = request.Name
	existing.Notes = request.Notes
	existing.Entries = mapEntryRequestsToModels(request.Entries)
	existing.UpdatedAt = time.Now()

	if err := uc.WorkoutRepository.UpdateWorkout(ctx, existing); err != nil {
		return nil, err
	}
	return mapWorkoutToResponse(existing), nil
}

func (uc *workoutUsecase) DeleteWorkoutByID(ctx context.Context, sessionData, workoutID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	existing, err := uc.WorkoutRepository.FindByIDAndUserID(ctx, workoutID, session.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrWorkoutNotFound(nil)
	}
	return uc.WorkoutRepository.DeleteByIDAndUserID(ctx, workoutID, session.UserID)
}

func (uc *workoutUsecase) ensureExercisesExist(ctx context.Context, entries []requests.WorkoutEntry) error {
	for _, entry := range entries {
		exercise, err := uc.ExerciseRepository.FindByID(ctx, entry.ExerciseID)
		if err != nil {
			return err
		}
		if exercise == nil {
			return exceptions.ErrExerciseNotFound(nil)
		}
	}
	return nil
}

func mapEntryRequestsToModels(entries []requests.WorkoutEntry) []models.WorkoutEntry {
	result := make([]models.WorkoutEntry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, models.WorkoutEntry{
			ExerciseID:        entry.ExerciseID,
			Sets:              entry.Sets,
			Reps:              entry.Reps,
			DurationInSeconds: entry.DurationInSeconds,
		})
	}
	return result
}

func mapWorkoutToResponse(workout *models.Workout) *responses.Workout {
	entries := make([]responses.WorkoutEntry, 0, len(workout.Entries))
	for _, entry := range workout.Entries {
		entries = append(entries, responses.WorkoutEntry{
			ExerciseID:        entry.ExerciseID,
			Sets:              entry.Sets,
			Reps:              entry.Reps,
			DurationInSeconds: entry.DurationInSeconds,
		})
	}

	return &responses.Workout{
		WorkoutID: workout.ID,
		Name:      workout.Name,
		Notes:     workout.Notes,
		Entries:   entries,
	}
}
