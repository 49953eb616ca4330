package muscles

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

type muscleUsecase struct {
	MuscleRepository contracts.MuscleRepository
	Log              *zap.Logger
}

var (
	muscleUsecaseInstance contracts.MuscleUsecase
	onceMuscleUsecase     sync.Once
)

func NewMuscleUsecase(muscleRepository contracts.MuscleRepository, logger *zap.Logger) contracts.MuscleUsecase {
	onceMuscleUsecase.Do(func() {
		muscleUsecaseInstance = &muscleUsecase{
			MuscleRepository: muscleRepository,
			Log:              logger,
		}
	})
	return muscleUsecaseInstance
}

func (uc *muscleUsecase) CreateMuscle(ctx context.Context, request *requests.CreateMuscle) (*responses.Muscle, error) {
	existing, err := uc.MuscleRepository.FindByName(ctx, request.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrMuscleAlreadyExists(nil)
	}

	now := time.Now()
	muscle := &models.Muscle{
		Name:        request.Name,
		Description: request.Description,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	muscleID, err := uc.MuscleRepository.CreateMuscle(ctx, muscle)
	if err != nil {
		return nil, err
	}

	muscle.ID = muscleID
	return mapMuscleToResponse(muscle), nil
}

func (uc *muscleUsecase) ListMuscles(ctx context.Context) ([]responses.Muscle, error) {
	muscles, err := uc.MuscleRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Muscle, 0, len(muscles))
	for i := range muscles {
		response = append(response, *mapMuscleToResponse(&muscles[i]))
	}
	return response, nil
}

func (uc *muscleUsecase) FindMuscleByID(ctx context.Context, muscleID string) (*responses.Muscle, error) {
	muscle, err := uc.MuscleRepository.FindByID(ctx, muscleID)
	if err != nil {
		return nil, err
	}
	if muscle == nil {
		return nil, exceptions.ErrMuscleNotFound(nil)
	}
	return mapMuscleToResponse(muscle), nil
}

func (uc *muscleUsecase) UpdateMuscle(ctx context.Context, request *requests.UpdateMuscle) (*responses.Muscle, error) {
	existing, err := uc.MuscleRepository.FindByID(ctx, request.MuscleID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrMuscleNotFound(nil)
	}

	existing.Name = request.Name
	existing.Description = request.Description
	existing.UpdatedAt = time.Now()

	if err := uc.MuscleRepository.UpdateMuscle(ctx, existing); err != nil {
		return nil, err
	}
	return mapMuscleToResponse(existing), nil
}

func (uc *muscleUsecase) DeleteMuscleByID(ctx context.Context, muscleID string) error {
	existing, err := uc.MuscleRepository.FindByID(ctx, muscleID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrMuscleNotFound(nil)
	}
	return uc.MuscleRepository.DeleteByID(ctx, muscleID)
}

func mapMuscleToResponse(muscle *models.Muscle) *responses.Muscle {
	return &responses.Muscle{
		MuscleID:    muscle.ID,
		Name:        muscle.Name,
		Description: muscle.Description,
	}
}
