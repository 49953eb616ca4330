package penpals

import (
	"context"
	"fmt"
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/constvars"
	"mindfit-service/internal/pkg/dto/requests"
	"mindfit-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePenpalRepository struct {
	relations []*models.PenpalRelation
	messages  []*models.PenpalMessage
	nextID    int
}

func (f *fakePenpalRepository) CreateRelation(ctx context.Context, relation *models.PenpalRelation) (string, error) {
	f.nextID++
	relation.ID = fmt.Sprintf("relation-%d", f.nextID)
	f.relations = append(f.relations, relation)
	return relation.ID, nil
}

func (f *fakePenpalRepository) FindRelationBetween(ctx context.Context, userA, userB string) (*models.PenpalRelation, error) {
	for _, relation := range f.relations {
		if (relation.Requester == userA && relation.Recipient == userB) ||
			(relation.Requester == userB && relation.Recipient == userA) {
			return relation, nil
		}
	}
	return nil, nil
}

func (f *fakePenpalRepository) FindRelationByID(ctx context.Context, relationID string) (*models.PenpalRelation, error) {
	for _, relation := range f.relations {
		if relation.ID == relationID {
			return relation, nil
		}
	}
	return nil, nil
}

func (f *fakePenpalRepository) FindPendingByRecipient(ctx context.Context, recipient string) ([]models.PenpalRelation, error) {
	result := make([]models.PenpalRelation, 0)
	for _, relation := range f.relations {
		if relation.Recipient == recipient && relation.Status == constvars.PenpalRelationPending {
			result = append(result, *relation)
		}
	}
	return result, nil
}

func (f *fakePenpalRepository) FindFriendsOf(ctx context.Context, username string) ([]models.PenpalRelation, error) {
	result := make([]models.PenpalRelation, 0)
	for _, relation := range f.relations {
		if relation.Status != constvars.PenpalRelationAccepted {
			continue
		}
		if relation.Requester == username || relation.Recipient == username {
			result = append(result, *relation)
		}
	}
	return result, nil
}

func (f *fakePenpalRepository) UpdateRelationStatus(ctx context.Context, relationID, status string) error {
	for _, relation := range f.relations {
		if relation.ID == relationID {
			relation.Status = status
			now := time.Now()
			relation.AnswerAt = &now
			return nil
		}
	}
	return exceptions.ErrPenpalRequestNotFound(nil)
}

func (f *fakePenpalRepository) DeleteRelationBetween(ctx context.Context, userA, userB string) error {
	kept := f.relations[:0]
	for _, relation := range f.relations {
		match := (relation.Requester == userA && relation.Recipient == userB) ||
			(relation.Requester == userB && relation.Recipient == userA)
		if !match {
			kept = append(kept, relation)
		}
	}
	f.relations = kept
	return nil
}

func (f *fakePenpalRepository) CreateMessage(ctx context.Context, message *models.PenpalMessage) (string, error) {
	f.nextID++
	message.ID = fmt.Sprintf("message-%d", f.nextID)
	f.messages = append(f.messages, message)
	return message.ID, nil
}

func (f *fakePenpalRepository) FindConversation(ctx context.Context, userA, userB string) ([]models.PenpalMessage, error) {
	result := make([]models.PenpalMessage, 0)
	for _, message := range f.messages {
		if (message.Sender == userA && message.Recipient == userB) ||
			(message.Sender == userB && message.Recipient == userA) {
			result = append(result, *message)
		}
	}
	return result, nil
}

type fakeUserRepository struct {
	usernames map[string]bool
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	return "", nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.usernames[username] {
		return &models.User{ID: "user-" + username, Username: username, Active: true}, nil
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	return nil
}

func (f *fakeUserRepository) DeleteByID(ctx context.Context, userID string) error {
	return nil
}

type staticSessionService struct {
	username string
}

func (s *staticSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return &models.Session{SessionID: "sess", UserID: "user-" + s.username, Username: s.username}, nil
}

func (s *staticSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func newTestPenpalUsecase(repo *fakePenpalRepository, username string, knownUsers ...string) *penpalUsecase {
	usernames := make(map[string]bool)
	for _, user := range knownUsers {
		usernames[user] = true
	}

	return &penpalUsecase{
		PenpalRepository: repo,
		UserRepository:   &fakeUserRepository{usernames: usernames},
		SessionService:   &staticSessionService{username: username},
		Log:              zap.NewNop(),
	}
}

func sendRequest(username string) *requests.SendPenpalRequest {
	return &requests.SendPenpalRequest{Username: username}
}

func respondRequest(requestID, action string) *requests.RespondPenpalRequest {
	return &requests.RespondPenpalRequest{RequestID: requestID, Action: action}
}

func sendMessage(recipient, body string) *requests.SendPenpalMessage {
	return &requests.SendPenpalMessage{Recipient: recipient, Body: body}
}

func TestSendRequest(t *testing.T) {
	t.Run("Creates Pending Relation", func(t *testing.T) {
		repo := &fakePenpalRepository{}
		uc := newTestPenpalUsecase(repo, "alice", "bob")

		result, err := uc.SendRequest(context.Background(), "s", sendRequest("bob"))
		require.NoError(t, err)

		assert.Equal(t, "alice", result.From)
		assert.Equal(t, "bob", result.To)
		assert.Equal(t, constvars.PenpalRelationPending, result.Status)
	})

	t.Run("Rejects Self Request", func(t *testing.T) {
		uc := newTestPenpalUsecase(&fakePenpalRepository{}, "alice", "alice")

		_, err := uc.SendRequest(context.Background(), "s", sendRequest("alice"))
		assert.Error(t, err)
	})

	t.Run("Rejects Unknown User", func(t *testing.T) {
		uc := newTestPenpalUsecase(&fakePenpalRepository{}, "alice")

		_, err := uc.SendRequest(context.Background(), "s", sendRequest("ghost"))
		assert.Error(t, err)
	})

	t.Run("Rejects Duplicate Pending Request", func(t *testing.T) {
		repo := &fakePenpalRepository{}
		uc := newTestPenpalUsecase(repo, "alice", "bob")

		_, err := uc.SendRequest(context.Background(), "s", sendRequest("bob"))
		require.NoError(t, err)

		_, err = uc.SendRequest(context.Background(), "s", sendRequest("bob"))
		assert.Error(t, err)
	})

	t.Run("Declined Edge Allows A Fresh Request", func(t *testing.T) {
		repo := &fakePenpalRepository{}
		repo.relations = append(repo.relations, &models.PenpalRelation{
			ID:        "relation-old",
			Requester: "alice",
			Recipient: "bob",
			Status:    constvars.PenpalRelationDeclined,
			SentAt:    time.Now().Add(-24 * time.Hour),
		})
		uc := newTestPenpalUsecase(repo, "alice", "bob")

		result, err := uc.SendRequest(context.Background(), "s", sendRequest("bob"))
		require.NoError(t, err)
		assert.Equal(t, constvars.PenpalRelationPending, result.Status)
	})
}

func TestRespondToRequest(t *testing.T) {
	setup := func() (*fakePenpalRepository, string) {
		repo := &fakePenpalRepository{}
		sender := newTestPenpalUsecase(repo, "alice", "bob")
		result, err := sender.SendRequest(context.Background(), "s", sendRequest("bob"))
		if err != nil {
			panic(err)
		}
		return repo, result.RequestID
	}

	t.Run("Accept", func(t *testing.T) {
		repo, requestID := setup()
		uc := newTestPenpalUsecase(repo, "bob", "alice")

		result, err := uc.RespondToRequest(context.Background(), "s", respondRequest(requestID, "accept"))
		require.NoError(t, err)
		assert.Equal(t, constvars.PenpalRelationAccepted, result.Status)

		friends, err := uc.ListFriends(context.Background(), "s")
		require.NoError(t, err)
		require.Len(t, friends, 1)
		assert.Equal(t, "alice", friends[0].Username)
	})

	t.Run("Decline", func(t *testing.T) {
		repo, requestID := setup()
		uc := newTestPenpalUsecase(repo, "bob", "alice")

		result, err := uc.RespondToRequest(context.Background(), "s", respondRequest(requestID, "decline"))
		require.NoError(t, err)
		assert.Equal(t, constvars.PenpalRelationDeclined, result.Status)

		friends, err := uc.ListFriends(context.Background(), "s")
		require.NoError(t, err)
		assert.Empty(t, friends)
	})

	t.Run("Only The Recipient May Answer", func(t *testing.T) {
		repo, requestID := setup()
		uc := newTestPenpalUsecase(repo, "alice", "bob")

		_, err := uc.RespondToRequest(context.Background(), "s", respondRequest(requestID, "accept"))
		assert.Error(t, err)
	})
}

func TestMessaging(t *testing.T) {
	makeFriends := func() *fakePenpalRepository {
		repo := &fakePenpalRepository{}
		sender := newTestPenpalUsecase(repo, "alice", "bob")
		result, err := sender.SendRequest(context.Background(), "s", sendRequest("bob"))
		if err != nil {
			panic(err)
		}
		recipient := newTestPenpalUsecase(repo, "bob", "alice")
		if _, err := recipient.RespondToRequest(context.Background(), "s", respondRequest(result.RequestID, "accept")); err != nil {
			panic(err)
		}
		return repo
	}

	t.Run("Friends Can Exchange Messages", func(t *testing.T) {
		repo := makeFriends()
		alice := newTestPenpalUsecase(repo, "alice", "bob")
		bob := newTestPenpalUsecase(repo, "bob", "alice")

		_, err := alice.SendMessage(context.Background(), "s", sendMessage("bob", "hi bob"))
		require.NoError(t, err)
		_, err = bob.SendMessage(context.Background(), "s", sendMessage("alice", "hi alice"))
		require.NoError(t, err)

		conversation, err := alice.ListConversation(context.Background(), "s", "bob")
		require.NoError(t, err)
		require.Len(t, conversation, 2)
		assert.Equal(t, "hi bob", conversation[0].Body)
		assert.Equal(t, "hi alice", conversation[1].Body)
	})

	t.Run("Strangers Cannot Message", func(t *testing.T) {
		repo := &fakePenpalRepository{}
		alice := newTestPenpalUsecase(repo, "alice", "bob")

		_, err := alice.SendMessage(context.Background(), "s", sendMessage("bob", "hello"))
		assert.Error(t, err)
	})

	t.Run("Removing A Friend Cuts The Channel", func(t *testing.T) {
		repo := makeFriends()
		alice := newTestPenpalUsecase(repo, "alice", "bob")

		require.NoError(t, alice.RemoveFriend(context.Background(), "s", "bob"))

		_, err := alice.SendMessage(context.Background(), "s", sendMessage("bob", "hello again"))
		assert.Error(t, err)
	})
}
