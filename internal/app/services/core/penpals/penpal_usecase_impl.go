package penpals

import (
	"context"
	"mindfit-service/internal/app/contracts"
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/constvars"
	"mindfit-service/internal/pkg/dto/requests"
	"mindfit-service/internal/pkg/dto/responses"
	"mindfit-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type penpalUsecase struct {
	PenpalRepository contracts.PenpalRepository
	UserRepository   contracts.UserRepository
	SessionService   contracts.SessionService
	Log              *zap.Logger
}

var (
	penpalUsecaseInstance contracts.PenpalUsecase
	oncePenpalUsecase     sync.Once
)

func NewPenpalUsecase(
	penpalRepository contracts.PenpalRepository,
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.PenpalUsecase {
	oncePenpalUsecase.Do(func() {
		penpalUsecaseInstance = &penpalUsecase{
			PenpalRepository: penpalRepository,
			UserRepository:   userRepository,
			SessionService:   sessionService,
			Log:              logger,
		}
	})
	return penpalUsecaseInstance
}

func (uc *penpalUsecase) SendRequest(ctx context.Context, sessionData string, request *requests.SendPenpalRequest) (*responses.PenpalRequest, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	if request.Username == session.Username {
		return nil, exceptions.ErrPenpalSelfRequest(nil)
	}

	target, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if target == nil || !target.Active {
		return nil, exceptions.ErrPenpalUserNotFound(nil)
	}

	existing, err := uc.PenpalRepository.FindRelationBetween(ctx, session.Username, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case constvars.PenpalRelationAccepted:
			return nil, exceptions.ErrPenpalAlreadyFriends(nil)
		case constvars.PenpalRelationPending:
			return nil, exceptions.ErrPenpalRequestPending(nil)
		default:
			// A declined edge does not block a fresh attempt.
			if err := uc.PenpalRepository.DeleteRelationBetween(ctx, session.Username, request.Username); err != nil {
				return nil, err
			}
		}
	}

	relation := &models.PenpalRelation{
		Requester: session.Username,
		Recipient: request.Username,
		Status:    constvars.PenpalRelationPending,
		SentAt:    time.Now(),
	}

	relationID, err := uc.PenpalRepository.CreateRelation(ctx, relation)
	if err != nil {
		return nil, err
	}

	relation.ID = relationID
	return mapRelationToRequestResponse(relation), nil
}

func (uc *penpalUsecase) ListIncomingRequests(ctx context.Context, sessionData string) ([]responses.PenpalRequest, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	relations, err := uc.PenpalRepository.FindPendingByRecipient(ctx, session.Username)
	if err != nil {
		return nil, err
	}

	response := make([]responses.PenpalRequest, 0, len(relations))
	for i := range relations {
		response = append(response, *mapRelationToRequestResponse(&relations[i]))
	}
	return response, nil
}

func (uc *penpalUsecase) RespondToRequest(ctx context.Context, sessionData string, request *requests.RespondPenpalRequest) (*responses.PenpalRequest, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	relation, err := uc.PenpalRepository.FindRelationByID(ctx, request.RequestID)
	if err != nil {
		return nil, err
	}
	// Only the recipient of a pending request may answer it.
	if relation == nil || relation.Recipient != session.Username || relation.Status != constvars.PenpalRelationPending {
		return nil, exceptions.ErrPenpalRequestNotFound(nil)
	}

	status := constvars.PenpalRelationDeclined
	if request.Action == "accept" {
		status = constvars.PenpalRelationAccepted
	}

	if err := uc.PenpalRepository.UpdateRelationStatus(ctx, relation.ID, status); err != nil {
		return nil, err
	}

	relation.Status = status
	now := time.Now()
	relation.AnswerAt = &now
	return mapRelationToRequestResponse(relation), nil
}

func (uc *penpalUsecase) ListFriends(ctx context.Context, sessionData string) ([]responses.PenpalFriend, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	relations, err := uc.PenpalRepository.FindFriendsOf(ctx, session.Username)
	if err != nil {
		return nil, err
	}

	friends := make([]responses.PenpalFriend, 0, len(relations))
	for _, relation := range relations {
		friendUsername := relation.Requester
		if friendUsername == session.Username {
			friendUsername = relation.Recipient
		}

		since := relation.SentAt
		if relation.AnswerAt != nil {
			since = *relation.AnswerAt
		}

		friends = append(friends, responses.PenpalFriend{
			Username: friendUsername,
			Since:    since,
		})
	}
	return friends, nil
}

func (uc *penpalUsecase) RemoveFriend(ctx context.Context, sessionData, friendUsername string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	if err := uc.ensureFriends(ctx, session.Username, friendUsername); err != nil {
		return err
	}
	return uc.PenpalRepository.DeleteRelationBetween(ctx, session.Username, friendUsername)
}

func (uc *penpalUsecase) SendMessage(ctx context.Context, sessionData string, request *requests.SendPenpalMessage) (*responses.PenpalMessage, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	if err := uc.ensureFriends(ctx, session.Username, request.Recipient); err != nil {
		return nil, err
	}

	message := &models.PenpalMessage{
		Sender:    session.Username,
		Recipient: request.Recipient,
		Body:      request.Body,
		SentAt:    time.Now(),
	}

	messageID, err := uc.PenpalRepository.CreateMessage(ctx, message)
	if err != nil {
		return nil, err
	}

	message.ID = messageID
	return mapMessageToResponse(message), nil
}

func (uc *penpalUsecase) ListConversation(ctx context.Context, sessionData, friendUsername string) ([]responses.PenpalMessage, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	if err := uc.ensureFriends(ctx, session.Username, friendUsername); err != nil {
		return nil, err
	}

	messages, err := uc.PenpalRepository.FindConversation(ctx, session.Username, friendUsername)
	if err != nil {
		return nil, err
	}

	response := make([]responses.PenpalMessage, 0, len(messages))
	for i := range messages {
		response = append(response, *mapMessageToResponse(&messages[i]))
	}
	return response, nil
}

func (uc *penpalUsecase) ensureFriends(ctx context.Context, username, friendUsername string) error {
	relation, err := uc.PenpalRepository.FindRelationBetween(ctx, username, friendUsername)
	if err != nil {
		return err
	}
	if relation == nil || relation.Status != constvars.PenpalRelationAccepted {
		return exceptions.ErrPenpalNotFriends(nil)
	}
	return nil
}

func mapRelationToRequestResponse(relation *models.PenpalRelation) *responses.PenpalRequest {
	return &responses.PenpalRequest{
		RequestID: relation.ID,
		From:      relation.Requester,
		To:        relation.Recipient,
		Status:    relation.Status,
		SentAt:    relation.SentAt,
	}
}

func mapMessageToResponse(message *models.PenpalMessage) *responses.PenpalMessage {
	return &responses.PenpalMessage{
		MessageID: message.ID,
		Sender:    message.Sender,
		Recipient: message.Recipient,
		Body:      message.Body,
		SentAt:    message.SentAt,
	}
}
