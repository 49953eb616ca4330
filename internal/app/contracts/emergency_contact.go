package contracts

import (
	"context"
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/dto/requests"
	"mindfit-service/internal/pkg/dto/responses"
)

type EmergencyContactRepository interface {
	CreateContact(ctx context.Context, contact *models.EmergencyContact) (string, error)
	FindAllByUserID(ctx context.Context, userID string) ([]models.EmergencyContact, error)
	FindByIDAndUserID(ctx context.Context, contactID, userID string) (*models.EmergencyContact, error)
	UpdateContact(ctx context.Context, contact *models.EmergencyContact) error
	DeleteByIDAndUserID(ctx context.Context, contactID, userID string) error
}

type EmergencyContactUsecase interface {
	CreateContact(ctx context.Context, sessionData string, request *requests.CreateEmergencyContact) (*responses.EmergencyContact, error)
	ListContacts(ctx context.Context, sessionData string) ([]responses.EmergencyContact, error)
	FindContactByID(ctx context.Context, sessionData, contactID string) (*responses.EmergencyContact, error)
	UpdateContact(ctx context.Context, sessionData string, request *requests.UpdateEmergencyContact) (*responses.EmergencyContact, error)
	DeleteContactByID(ctx context.Context, sessionData, contactID string) error
}
