package contracts

import (
	"context"
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/dto/requests"
	"mindfit-service/internal/pkg/dto/responses"
)

type PenpalRepository interface {
	CreateRelation(ctx context.Context, relation *models.PenpalRelation) (string, error)
	FindRelationBetween(ctx context.Context, userA, userB string) (*models.PenpalRelation, error)
	FindRelationByID(ctx context.Context, relationID string) (*models.PenpalRelation, error)
	FindPendingByRecipient(ctx context.Context, recipient string) ([]models.PenpalRelation, error)
	FindFriendsOf(ctx context.Context, username string) ([]models.PenpalRelation, error)
	UpdateRelationStatus(ctx context.Context, relationID, status string) error
	DeleteRelationBetween(ctx context.Context, userA, userB string) error

	CreateMessage(ctx context.Context, message *models.PenpalMessage) (string, error)
	FindConversation(ctx context.Context, userA, userB string) ([]models.PenpalMessage, error)
}

type PenpalUsecase interface {
	SendRequest(ctx context.Context, sessionData string, request *requests.SendPenpalRequest) (*responses.PenpalRequest, error)
	ListIncomingRequests(ctx context.Context, sessionData string) ([]responses.PenpalRequest, error)
	RespondToRequest(ctx context.Context, sessionData string, request *requests.RespondPenpalRequest) (*responses.PenpalRequest, error)
	ListFriends(ctx context.Context, sessionData string) ([]responses.PenpalFriend, error)
	RemoveFriend(ctx context.Context, sessionData, friendUsername string) error
	SendMessage(ctx context.Context, sessionData string, request *requests.SendPenpalMessage) (*responses.PenpalMessage, error)
	ListConversation(ctx context.Context, sessionData, friendUsername string) ([]responses.PenpalMessage, error)
}
