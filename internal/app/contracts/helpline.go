package contracts

import (
	"context"
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/dto/requests"
	"mindfit-service/internal/pkg/dto/responses"
	"time"
)

type HelplineRepository interface {
	CreateHelpline(ctx context.Context, helpline *models.Helpline) (string, error)
	FindAll(ctx context.Context) ([]models.Helpline, error)
	FindByID(ctx context.Context, helplineID string) (*models.Helpline, error)
	UpdateHelpline(ctx context.Context, helpline *models.Helpline) error
	DeleteByID(ctx context.Context, helplineID string) error
}

type HelplineUsecase interface {
	CreateHelpline(ctx context.Context, request *requests.HelplinePayload) (*responses.Helpline, error)
	ListHelplines(ctx context.Context, openNow bool, now time.Time) ([]responses.Helpline, error)
	FindHelplineByID(ctx context.Context, helplineID string) (*responses.Helpline, error)
	UpdateHelpline(ctx context.Context, request *requests.HelplinePayload) (*responses.Helpline, error)
	DeleteHelplineByID(ctx context.Context, helplineID string) error
}
