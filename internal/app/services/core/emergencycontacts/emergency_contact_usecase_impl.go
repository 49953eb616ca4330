package emergencycontacts

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

type emergencyContactUsecase struct {
	ContactRepository contracts.EmergencyContactRepository
	SessionService    contracts.SessionService
	Log               *zap.Logger
}

var (
	emergencyContactUsecaseInstance contracts.EmergencyContactUsecase
	onceEmergencyContactUsecase     sync.Once
)

func NewEmergencyContactUsecase(
	contactRepository contracts.EmergencyContactRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.EmergencyContactUsecase {
	onceEmergencyContactUsecase.Do(func() {
		emergencyContactUsecaseInstance = &emergencyContactUsecase{
			ContactRepository: contactRepository,
			SessionService:    sessionService,
			Log:               logger,
		}
	})
	return emergencyContactUsecaseInstance
}

func (uc *emergencyContactUsecase) CreateContact(ctx context.Context, sessionData string, request *requests.CreateEmergencyContact) (*responses.EmergencyContact, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	contact := &models.EmergencyContact{
		UserID:       session.UserID,
		Name:         request.Name,
		Relationship: request.Relationship,
		PhoneNumber:  request.PhoneNumber,
		Email:        request.Email,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	contactID, err := uc.ContactRepository.CreateContact(ctx, contact)
	if err != nil {
		return nil, err
	}

	contact.ID = contactID
	return mapContactToResponse(contact), nil
}

func (uc *emergencyContactUsecase) ListContacts(ctx context.Context, sessionData string) ([]responses.EmergencyContact, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	contacts, err := uc.ContactRepository.FindAllByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.EmergencyContact, 0, len(contacts))
	for i := range contacts {
		response = append(response, *mapContactToResponse(&contacts[i]))
	}
	return response, nil
}

func (uc *emergencyContactUsecase) FindContactByID(ctx context.Context, sessionData, contactID string) (*responses.EmergencyContact, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	contact, err := uc.ContactRepository.FindByIDAndUserID(ctx, contactID, session.UserID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, exceptions.ErrEmergencyContactNotFound(nil)
	}
	return mapContactToResponse(contact), nil
}

func (uc *emergencyContactUsecase) UpdateContact(ctx context.Context, sessionData string, request *requests.UpdateEmergencyContact) (*responses.EmergencyContact, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	existing, err := uc.ContactRepository.FindByIDAndUserID(ctx, request.ContactID, session.UserID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrEmergencyContactNotFound(nil)
	}

	existing.Name = request.Name
	existing.Relationship = request.Relationship
	existing.PhoneNumber = request.PhoneNumber
	existing.Email = request.Email
	existing.UpdatedAt = time.Now()

	if err := uc.ContactRepository.UpdateContact(ctx, existing); err != nil {
		return nil, err
	}
	return mapContactToResponse(existing), nil
}

func (uc *emergencyContactUsecase) DeleteContactByID(ctx context.Context, sessionData, contactID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	existing, err := uc.ContactRepository.FindByIDAndUserID(ctx, contactID, session.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrEmergencyContactNotFound(nil)
	}
	return uc.ContactRepository.DeleteByIDAndUserID(ctx, contactID, session.UserID)
}

func mapContactToResponse(contact *models.EmergencyContact) *responses.EmergencyContact {
	return &responses.EmergencyContact{
		ContactID:    contact.ID,
		Name:         contact.Name,
		Relationship: contact.Relationship,
		PhoneNumber:  contact.PhoneNumber,
		Email:        contact.Email,
	}
}
