package helplines

import (
	"context"
	"mindfit-service/internal/app/contracts"
	"mindfit-service/internal/pkg/dto/requests"
	"mindfit-service/internal/pkg/dto/responses"
	"mindfit-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type helplineUsecase struct {
	HelplineRepository contracts.HelplineRepository
	Log                *zap.Logger
}

var (
	helplineUsecaseInstance contracts.HelplineUsecase
	onceHelplineUsecase     sync.Once
)

func NewHelplineUsecase(
	helplineRepository contracts.HelplineRepository,
	logger *zap.Logger,
) contracts.HelplineUsecase {
	onceHelplineUsecase.Do(func() {
		helplineUsecaseInstance = &helplineUsecase{
			HelplineRepository: helplineRepository,
			Log:                logger,
		}
	})
	return helplineUsecaseInstance
}

func (uc *helplineUsecase) CreateHelpline(ctx context.Context, request *requests.HelplinePayload) (*responses.Helpline, error) {
	helpline := mapHelplinePayloadToModel(request)
	helpline.CreatedAt = time.Now()
	helpline.UpdatedAt = helpline.CreatedAt

	helplineID, err := uc.HelplineRepository.CreateHelpline(ctx, helpline)
	if err != nil {
		return nil, err
	}

	helpline.ID = helplineID
	return mapHelplineToResponse(helpline), nil
}

func (uc *helplineUsecase) ListHelplines(ctx context.Context, openNow bool, now time.Time) ([]responses.Helpline, error) {
	helplines, err := uc.HelplineRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	evaluationContext := NewEvaluationContext(now)
	visible := listHelplines(helplines, openNow, evaluationContext)

	response := make([]responses.Helpline, 0, len(visible))
	for i := range visible {
		response = append(response, *mapHelplineToResponse(&visible[i]))
	}
	return response, nil
}

func (uc *helplineUsecase) FindHelplineByID(ctx context.Context, helplineID string) (*responses.Helpline, error) {
	helpline, err := uc.HelplineRepository.FindByID(ctx, helplineID)
	if err != nil {
		return nil, err
	}
	if helpline == nil {
		return nil, exceptions.ErrHelplineNotFound(nil)
	}
	return mapHelplineToResponse(helpline), nil
}

func (uc *helplineUsecase) UpdateHelpline(ctx context.Context, request *requests.HelplinePayload) (*responses.Helpline, error) {
	existing, err := uc.HelplineRepository.FindByID(ctx, request.HelplineID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrHelplineNotFound(nil)
	}

	helpline := mapHelplinePayloadToModel(request)
	helpline.ID = existing.ID
	helpline.CreatedAt = existing.CreatedAt
	helpline.UpdatedAt = time.Now()

	if err := uc.HelplineRepository.UpdateHelpline(ctx, helpline); err != nil {
		return nil, err
	}
	return mapHelplineToResponse(helpline), nil
}

func (uc *helplineUsecase) DeleteHelplineByID(ctx context.Context, helplineID string) error {
	existing, err := uc.HelplineRepository.FindByID(ctx, helplineID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrHelplineNotFound(nil)
	}
	return uc.HelplineRepository.DeleteByID(ctx, helplineID)
}
